package httpx

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

const maxBody = 1 << 20

type APIError struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string, details interface{}) {
	WriteJSON(w, status, APIError{
		Error:   msg,
		Details: details,
	})
}

// ReadFields returns the request body as flat string fields. JSON objects,
// urlencoded and multipart forms are accepted; JSON numbers and booleans are
// rendered as their literal text.
func ReadFields(r *http.Request) (url.Values, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return url.Values{}, nil
	}
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/json":
		return readJSON(r)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBody); err != nil {
			return nil, fmt.Errorf("invalid form body: %w", err)
		}
		return r.PostForm, nil
	default:
		r.Body = http.MaxBytesReader(nil, r.Body, maxBody)
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form body: %w", err)
		}
		return r.PostForm, nil
	}
}

func readJSON(r *http.Request) (url.Values, error) {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBody))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid json body: %w", err)
	}
	out := url.Values{}
	for k, v := range raw {
		switch t := v.(type) {
		case nil:
		case string:
			out.Set(k, t)
		case json.Number:
			out.Set(k, t.String())
		case bool:
			out.Set(k, fmt.Sprint(t))
		default:
			return nil, fmt.Errorf("invalid json body: field %q must be a scalar", k)
		}
	}
	return out, nil
}
