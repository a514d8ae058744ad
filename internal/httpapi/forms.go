package httpapi

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"sort"

	"github.com/gorilla/schema"

	"fitscan/internal/coach"
)

// formDecoder maps submitted form values onto the *Form structs below.
var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

type bodyForm struct {
	Age    int `schema:"age,required"`
	Height int `schema:"height,required"`
	Weight int `schema:"weight,required"`
}

type workoutForm struct {
	TrainingLocation string `schema:"training_location,required"`
	Limitations      string `schema:"limitations"`
	UserContext      string `schema:"user_context"`
}

// formError is a client error found while reading a request form.
type formError struct {
	status int
	msg    string
}

func (e *formError) Error() string   { return e.msg }
func (e *formError) StatusCode() int { return e.status }

func unprocessable(msg string) error {
	return &formError{status: http.StatusUnprocessableEntity, msg: msg}
}

// parseForm reads a multipart or urlencoded body bounded by maxBodyBytes.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var err error
	if isMultipart(r) {
		err = r.ParseMultipartForm(maxBodyBytes)
	} else {
		err = r.ParseForm()
	}
	if err == nil {
		return nil
	}
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) || errors.Is(err, multipart.ErrMessageTooLarge) {
		IncrementBackpressure("body_too_large")
		return &formError{status: http.StatusRequestEntityTooLarge, msg: msgTooLarge}
	}
	return unprocessable(msgBadForm)
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// decodeForm fills dst from the parsed form values.
func decodeForm(dst any, r *http.Request) error {
	err := formDecoder.Decode(dst, r.Form)
	if err == nil {
		return nil
	}
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return unprocessable(msgBadForm)
	}
	// Report the first field in name order so responses are stable.
	keys := make([]string, 0, len(multi))
	for k := range multi {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fieldError(keys[0], multi[keys[0]])
}

func fieldError(key string, err error) error {
	var empty schema.EmptyFieldError
	if errors.As(err, &empty) {
		return unprocessable(fmt.Sprintf("Campo obrigatório ausente: %s.", key))
	}
	return unprocessable(fmt.Sprintf("Valor inválido para o campo %s.", key))
}

// readImage loads the uploaded file of the image field.
func readImage(r *http.Request) (coach.Upload, error) {
	f, fh, err := r.FormFile("image")
	if err != nil {
		return coach.Upload{}, unprocessable(msgMissingImage)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return coach.Upload{}, fmt.Errorf("read upload: %w", err)
	}
	return coach.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
