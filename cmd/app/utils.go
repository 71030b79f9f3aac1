package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sushihentaime/newsfeed/internal/articleservice"
	"github.com/sushihentaime/newsfeed/internal/common"
)

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	json, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	for key, values := range headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(json)

	return nil
}

func (app *application) parseJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("request body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("request body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("request body contains an invalid value for the %q field", unmarshalTypeError.Field)
			}
			return fmt.Errorf("request body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("request body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("request body contains unknown field %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("request body must not be larger than %d bytes", maxBytesError.Limit)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}
	err = decoder.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("request body must only contain a single JSON value")
	}
	return nil
}

var idParamRX = regexp.MustCompile(`^\d+$`)

// readIDParam returns the named path parameter as a non-negative integer id.
func (app *application) readIDParam(r *http.Request, key, name string) (int, error) {
	params := httprouter.ParamsFromContext(r.Context())
	value := params.ByName(key)

	if !idParamRX.MatchString(value) {
		return 0, fmt.Errorf("Invalid %s id: %s", name, value)
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("Invalid %s id: %s", name, value)
	}

	return id, nil
}

// articleQueryParams are the only query keys the article listing accepts; "p" is the page.
var articleQueryParams = map[string]string{
	"topic":   "topic",
	"search":  "search",
	"sort_by": "sort_by",
	"order":   "order",
	"limit":   "limit",
	"p":       "page",
}

func (app *application) readListArticlesRequest(r *http.Request) (articleservice.ListArticlesRequest, error) {
	qs := r.URL.Query()

	var unknown []string
	for key := range qs {
		if _, ok := articleQueryParams[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return articleservice.ListArticlesRequest{}, fmt.Errorf("invalid %s query", unknown[0])
	}

	req := articleservice.ListArticlesRequest{
		Topic:  qs.Get("topic"),
		Search: qs.Get("search"),
		SortBy: qs.Get("sort_by"),
		Order:  qs.Get("order"),
	}

	v := common.NewValidator()
	req.Limit = readIntQuery(qs, "limit", v)
	req.Page = readIntQuery(qs, "p", v)
	if !v.Valid() {
		return req, v.ValidationError()
	}

	return req, nil
}

// readIntQuery returns nil when key is absent or empty. A value that is not an integer
// is recorded on v so every bad parameter is reported together.
func readIntQuery(qs url.Values, key string, v *common.Validator) *int {
	value := qs.Get(key)
	if value == "" {
		return nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		v.AddError(key, fmt.Sprintf("invalid %s query", articleQueryParams[key]))
		return nil
	}

	return &n
}
