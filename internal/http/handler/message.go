package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	errInvalidCredentials = "Invalid username or password."
	errUserTaken          = "User already registered."
)
