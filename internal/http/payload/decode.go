package payload

import (
	"fmt"
	"net/http"
)

// FormDecoder binds URL-encoded request bodies to form structs and runs
// their validation in one step.
type FormDecoder struct{}

func (fd FormDecoder) DecodeCredentials(r *http.Request) (CredentialsForm, error) {
	if err := r.ParseForm(); err != nil {
		return CredentialsForm{}, fmt.Errorf("parsing form payload: %w", err)
	}

	form := CredentialsForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	// validation errors are returned as-is, their messages are shown to the user
	if err := form.Validate(); err != nil {
		return form, err
	}

	return form, nil
}

func (fd FormDecoder) DecodeTask(r *http.Request) (TaskForm, error) {
	if err := r.ParseForm(); err != nil {
		return TaskForm{}, fmt.Errorf("parsing form payload: %w", err)
	}

	form := TaskForm{
		Content: r.PostFormValue("content"),
	}

	if err := form.Validate(); err != nil {
		return form, err
	}

	return form, nil
}
