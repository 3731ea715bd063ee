package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "backoffice/internal/domain/errors"
)

type attachmentInput struct {
	FileName string `validate:"required"`
	FilePath string `validate:"omitempty,imageurl"`
}

func TestValidator_ImageURLRule(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   attachmentInput
		wantErr bool
	}{
		{name: "https jpg", input: attachmentInput{FileName: "a", FilePath: "https://cdn.example.com/a.jpg"}},
		{name: "http png", input: attachmentInput{FileName: "a", FilePath: "http://cdn.example.com/a.png"}},
		{name: "gif", input: attachmentInput{FileName: "a", FilePath: "https://cdn.example.com/a.gif"}},
		{name: "empty path allowed", input: attachmentInput{FileName: "a"}},
		{name: "pdf rejected", input: attachmentInput{FileName: "a", FilePath: "https://cdn.example.com/a.pdf"}, wantErr: true},
		{name: "no scheme rejected", input: attachmentInput{FileName: "a", FilePath: "cdn.example.com/a.jpg"}, wantErr: true},
		{name: "missing required field", input: attachmentInput{FilePath: "https://cdn.example.com/a.jpg"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
