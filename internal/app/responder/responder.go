package responder

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/TPizik/gsad/internal/app/config"
	appErrors "github.com/TPizik/gsad/internal/app/errors"
	"github.com/TPizik/gsad/internal/app/models"
	"go.uber.org/zap"
)

// Command handles one request. It fills in data and returns the body to
// send when no redirect is set.
type Command func(r *http.Request, data *models.CmdResponseData) ([]byte, error)

type Responder struct {
	config config.Config
	pool   *Pool
	logger *zap.SugaredLogger
}

func NewResponder(cfg config.Config, logger *zap.SugaredLogger) *Responder {
	if logger == nil {
		logger = newLogger(cfg.Development)
	}
	return &Responder{
		config: cfg,
		pool:   NewPool(),
		logger: logger,
	}
}

func newLogger(development bool) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

// Handle wraps cmd into a handler that takes response data from the pool,
// writes what cmd left in it and resets it afterwards.
func (s *Responder) Handle(cmd Command) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := s.pool.Acquire()
		defer s.pool.Release(data)

		body, err := cmd(r, data)
		if err != nil {
			code := data.HTTPStatusCode
			if code < http.StatusBadRequest || code > 599 {
				code = http.StatusInternalServerError
			}
			s.error(w, code, err.Error())
			return
		}

		err = s.Write(w, r, data, body)
		switch {
		case errors.Is(err, appErrors.ErrInvalidStatusCode), errors.Is(err, appErrors.ErrInvalidRedirect):
			s.error(w, http.StatusInternalServerError, err.Error())
		case err != nil:
			s.logger.Errorw("write response", "path", r.URL.Path, "error", err)
		}
	}
}

// Write sends data as the response to r. A redirect takes precedence
// over body, and body is dropped for statuses that do not allow one.
// Nothing is written when data holds an invalid status code or redirect.
func (s *Responder) Write(w http.ResponseWriter, r *http.Request, data *models.CmdResponseData, body []byte) error {
	code := data.HTTPStatusCode
	if code < http.StatusOK || code > 599 {
		return fmt.Errorf("%w: %d", appErrors.ErrInvalidStatusCode, code)
	}

	if location, ok := data.Redirect(); ok {
		if _, err := url.Parse(location); err != nil {
			return fmt.Errorf("%w: %v", appErrors.ErrInvalidRedirect, err)
		}
		if !isRedirect(code) {
			code = redirectCode(r.Method)
		}
		s.logger.Infow("redirect", "path", r.URL.Path, "status", code, "location", location)
		http.Redirect(w, r, location, code)
		return nil
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", s.config.ContentType)
	}
	if !bodyAllowed(code) {
		body = nil
	}
	s.logger.Infow("respond", "path", r.URL.Path, "status", code, "size", len(body))
	w.WriteHeader(code)
	if len(body) == 0 {
		return nil
	}
	_, err := w.Write(body)
	return err
}

func (s *Responder) error(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	s.logger.Errorw(msg, "status", code)
	w.Write([]byte(msg))
}

// isRedirect reports whether code makes clients follow Location.
func isRedirect(code int) bool {
	switch code {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

func bodyAllowed(code int) bool {
	return code != http.StatusNoContent && code != http.StatusNotModified
}

func redirectCode(method string) int {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return http.StatusSeeOther
	}
	return http.StatusFound
}
