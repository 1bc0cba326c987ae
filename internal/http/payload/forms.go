package payload

import (
	"taskpad/internal/core"

	"github.com/jellydator/validation"
)

type CredentialsForm struct {
	Username string
	Password string
}

func (c CredentialsForm) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.Length(1, 25)),
		validation.Field(&c.Password, validation.Required),
	)
}

func (c CredentialsForm) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: c.Username,
		Password: c.Password,
	}
}

type TaskForm struct {
	Content string
}

func (t TaskForm) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Content, validation.Required, validation.Length(1, 100)),
	)
}
