package s3_test

import (
	"testing"

	"hotel/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		url    string
		want   string
	}{
		{name: "matching domain", domain: "https://cdn.hotel.test", url: "https://cdn.hotel.test/rooms/r-1/a.png", want: "rooms/r-1/a.png"},
		{name: "trailing slash", domain: "https://cdn.hotel.test/", url: "https://cdn.hotel.test/rooms/a.png", want: "rooms/a.png"},
		{name: "foreign url", domain: "https://cdn.hotel.test", url: "https://elsewhere.test/a.png", want: ""},
		{name: "no domain", domain: "", url: "https://cdn.hotel.test/a.png", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.ObjectKeyFromURL(tt.domain, tt.url))
		})
	}
}
