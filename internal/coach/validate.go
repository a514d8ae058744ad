package coach

import (
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

// Upload is an uploaded file as received by the HTTP layer.
type Upload struct {
	Filename string
	// ContentType is the type declared by the client; may be empty.
	ContentType string
	Data        []byte
}

// BodyRequest carries the inputs of a body analysis.
type BodyRequest struct {
	Age    int `validate:"gte=10,lte=120"`
	Height int `validate:"gte=100,lte=250"`
	Weight int `validate:"gte=30,lte=300"`
	Image  Upload
}

// MealRequest carries the inputs of a meal analysis.
type MealRequest struct {
	Image Upload
}

// WorkoutRequest carries the inputs of a workout generation.
type WorkoutRequest struct {
	TrainingLocation string `validate:"notblank"`
	Limitations      string
	// UserContext is optional free text forwarded to the model.
	UserContext string
}

const msgNotImage = "O arquivo enviado deve ser uma imagem."

// fieldMessages maps struct fields to user-facing messages.
var fieldMessages = map[string]string{
	"Age":              "Idade deve estar entre 10 e 120 anos.",
	"Height":           "Altura deve estar entre 100 e 250 cm.",
	"Weight":           "Peso deve estar entre 30 e 300 kg.",
	"TrainingLocation": "Informe o local de treino.",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

// check validates req and converts the first failure into a ValidationError.
// Fields are checked in declaration order.
func (s *Service) check(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := fieldMessages[verrs[0].StructField()]; ok {
			return ErrValidation(msg)
		}
		return ErrValidation("Campo inválido: " + verrs[0].Field())
	}
	return err
}

// checkImage accepts uploads whose declared type is image/*. Without a
// declared type the content is sniffed; empty uploads without a type pass.
func checkImage(u Upload) error {
	if u.ContentType != "" {
		if !strings.HasPrefix(strings.ToLower(u.ContentType), "image/") {
			return ErrValidation(msgNotImage)
		}
		return nil
	}
	if len(u.Data) == 0 {
		return nil
	}
	if !strings.HasPrefix(mimetype.Detect(u.Data).String(), "image/") {
		return ErrValidation(msgNotImage)
	}
	return nil
}

// MIME returns the media type used when forwarding the image: the declared
// type when it is an image type, otherwise the sniffed one.
func (u Upload) MIME() string {
	if ct := strings.ToLower(strings.TrimSpace(u.ContentType)); strings.HasPrefix(ct, "image/") {
		if i := strings.IndexByte(ct, ';'); i >= 0 {
			ct = strings.TrimSpace(ct[:i])
		}
		return ct
	}
	if len(u.Data) > 0 {
		if m := mimetype.Detect(u.Data); strings.HasPrefix(m.String(), "image/") {
			return m.String()
		}
	}
	return "image/jpeg"
}
