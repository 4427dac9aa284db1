package restclient

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"arthub_checkout/internal/domain/entities"

	"github.com/go-resty/resty/v2"
)

// New returns a JSON resty client bound to baseURL.
func New(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

// Exchange summarizes a call. resp may be nil or carry no raw response when the
// transport failed.
func Exchange(resp *resty.Response, method, url string) entities.HTTPExchange {
	ex := entities.HTTPExchange{Method: method, URL: url}
	if resp == nil {
		return ex
	}
	ex.Status = resp.StatusCode()
	ex.Body = string(resp.Body())
	if resp.Request != nil {
		ex.Latency = resp.Time()
	}
	return ex
}

type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

// ErrorMessage extracts a human-readable message from an error body. Shapes are
// checked in order: message, error.message, errors[].message, errors{field:[msg]},
// then a bare error string. The first non-empty one wins.
func ErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if s := strings.TrimSpace(eb.Message); s != "" {
		return s
	}

	var nested struct {
		Message string `json:"message"`
	}
	if len(eb.Error) > 0 && json.Unmarshal(eb.Error, &nested) == nil {
		if s := strings.TrimSpace(nested.Message); s != "" {
			return s
		}
	}

	var list []struct {
		Message string `json:"message"`
	}
	if len(eb.Errors) > 0 && json.Unmarshal(eb.Errors, &list) == nil {
		for _, it := range list {
			if s := strings.TrimSpace(it.Message); s != "" {
				return s
			}
		}
	}

	var byField map[string][]string
	if len(eb.Errors) > 0 && json.Unmarshal(eb.Errors, &byField) == nil {
		keys := make([]string, 0, len(byField))
		for k := range byField {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			for _, m := range byField[k] {
				if s := strings.TrimSpace(m); s != "" {
					return s
				}
			}
		}
	}

	var bare string
	if len(eb.Error) > 0 && json.Unmarshal(eb.Error, &bare) == nil {
		return strings.TrimSpace(bare)
	}
	return ""
}
