package secret_test

import (
	"testing"

	"hotel/shared/secret"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	digest, err := secret.Hash("482913")

	assert.NoError(t, err)
	assert.NotEqual(t, "482913", digest)
	assert.NoError(t, secret.Verify("482913", digest))
}

func TestHash_Empty(t *testing.T) {
	_, err := secret.Hash("")

	assert.ErrorIs(t, err, secret.ErrEmptySecret)
}

func TestHash_Salted(t *testing.T) {
	first, err := secret.Hash("000111")
	assert.NoError(t, err)

	second, err := secret.Hash("000111")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	digest, err := secret.Hash("123456")
	assert.NoError(t, err)

	tests := []struct {
		name    string
		value   string
		digest  string
		wantErr error
	}{
		{name: "match", value: "123456", digest: digest},
		{name: "mismatch", value: "654321", digest: digest, wantErr: secret.ErrMismatch},
		{name: "empty value", value: "", digest: digest, wantErr: secret.ErrMismatch},
		{name: "empty digest", value: "123456", digest: "", wantErr: secret.ErrMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := secret.Verify(tt.value, tt.digest)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestVerify_CorruptDigest(t *testing.T) {
	err := secret.Verify("123456", "not-a-bcrypt-digest")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, secret.ErrMismatch)
}
