package responder

import (
	"net/http"
	"testing"

	"github.com/TPizik/gsad/internal/app/models"
	"github.com/stretchr/testify/assert"
)

func TestPool_AcquireRelease(t *testing.T) {
	p := NewPool()

	for i := 0; i < 3; i++ {
		data := p.Acquire()
		assert.Equal(t, models.DefaultStatusCode, data.HTTPStatusCode)
		assert.False(t, data.HasRedirect())

		data.HTTPStatusCode = http.StatusFound
		data.SetRedirect("/login")
		p.Release(data)

		assert.Equal(t, models.DefaultStatusCode, data.HTTPStatusCode)
		assert.False(t, data.HasRedirect())
	}
}

func TestPool_ReleaseNil(t *testing.T) {
	p := NewPool()
	assert.NotPanics(t, func() { p.Release(nil) })
}

func TestPool_ReleaseTwice(t *testing.T) {
	p := NewPool()
	data := p.Acquire()

	p.Release(data)
	p.Release(data)

	a, b := p.Acquire(), p.Acquire()
	assert.NotSame(t, a, b)
}

func TestPool_ReleaseForeign(t *testing.T) {
	p := NewPool()
	data := models.NewCmdResponseData()
	data.SetRedirect("/login")

	p.Release(data)

	assert.True(t, data.HasRedirect())
	assert.Zero(t, p.RedirectsReleased())
}

func TestPool_RedirectsReleased(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		redirect string
		want     int64
	}{
		{
			name:     "redirect to login",
			code:     http.StatusFound,
			redirect: "https://example.test/login",
			want:     1,
		},
		{
			name: "ok without redirect",
			code: http.StatusOK,
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool()
			data := p.Acquire()
			data.HTTPStatusCode = tt.code
			data.SetRedirect(tt.redirect)

			p.Release(data)
			p.Release(data)

			assert.Equal(t, tt.want, p.RedirectsReleased())
			assert.False(t, data.HasRedirect())
			assert.Equal(t, models.DefaultStatusCode, data.HTTPStatusCode)
		})
	}
}
