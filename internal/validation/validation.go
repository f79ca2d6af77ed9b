// Package validation holds the single rule set applied to catalogue products and
// storefront orders. Every boundary that accepts one of those inputs calls into
// this package; the same rules are published to the browser through Describe.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"fastfood/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Field limits shared by the server and the browser mirror.
const (
	ProductNameMinLength        = 3
	ProductNameMaxLength        = 100
	ProductDescriptionMinLength = 10
	ImageMaxLength              = 255
	CustomerNameMaxLength       = 100
	EmailMaxLength              = 100
)

// MoneyDecimals is the scale of every stored amount (NUMERIC(10,2)).
const MoneyDecimals = 2

// Patterns are kept in a form both RE2 and ECMAScript accept.
const (
	CustomerNameExpr = `^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`
	PhoneExpr        = `^(\+569|9)\d{8}$`
	LocalImageExpr   = `^img/[a-zA-Z0-9\-_.]+\.(jpg|jpeg|png|gif|webp)$`
)

var (
	customerNamePattern = regexp.MustCompile(CustomerNameExpr)
	phonePattern        = regexp.MustCompile(PhoneExpr)
	localImagePattern   = regexp.MustCompile(`(?i)` + LocalImageExpr)
	itemIndexPattern    = regexp.MustCompile(`Products\[(\d+)\]`)
)

// Validator checks product and order inputs and reports every violation.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the catalogue and checkout rules registered.
func New() *Validator {
	v := validator.New()

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	mustRegister(v, "personname", matches(customerNamePattern))
	mustRegister(v, "chilephone", matches(phonePattern))
	mustRegister(v, "localimage", matches(localImagePattern))
	mustRegister(v, "money", money)

	v.RegisterStructValidationMapRules(map[string]string{
		"Name":        fmt.Sprintf("required,min=%d,max=%d", ProductNameMinLength, ProductNameMaxLength),
		"Description": fmt.Sprintf("required,min=%d", ProductDescriptionMinLength),
		"Price":       "required,gt=0,money",
		"Category":    "required,oneof=" + strings.Join(model.Categories, " "),
		"Image":       fmt.Sprintf("omitempty,max=%d,http_url|localimage", ImageMaxLength),
	}, model.ProductInput{})

	v.RegisterStructValidationMapRules(map[string]string{
		"Customer":      "required",
		"Products":      "required,min=1,dive",
		"PaymentMethod": "required,oneof=" + strings.Join(model.PaymentMethods, " "),
		"Total":         "money",
	}, model.OrderRequest{})

	v.RegisterStructValidationMapRules(map[string]string{
		"Name":  fmt.Sprintf("required,max=%d,personname", CustomerNameMaxLength),
		"Phone": "required,chilephone",
		"Email": fmt.Sprintf("omitempty,max=%d,email", EmailMaxLength),
	}, model.CustomerInput{})

	v.RegisterStructValidationMapRules(map[string]string{
		"ProductID": "gt=0",
		"Quantity":  "gt=0",
		"UnitPrice": "gt=0,money",
	}, model.OrderItemRequest{})

	return &Validator{validate: v}
}

// ValidateProduct normalises the input in place and returns a *model.ValidationError
// listing every rule it breaks, or nil.
func (v *Validator) ValidateProduct(in *model.ProductInput) error {
	if in == nil {
		return model.NewValidationError([]string{"Los datos del producto son requeridos"})
	}
	in.Normalize()

	return model.NewValidationError(v.messages(in, productMessage))
}

// ValidateOrder normalises the request in place and returns a *model.ValidationError
// listing every rule it breaks, or nil. The submitted total must equal the sum of
// quantity × unit price over the cart entries.
func (v *Validator) ValidateOrder(req *model.OrderRequest) error {
	if req == nil {
		return model.NewValidationError([]string{"Los datos del pedido son requeridos"})
	}
	req.Normalize()

	msgs := v.messages(req, orderMessage)
	if len(msgs) == 0 && !req.Total.Equal(req.ItemsTotal()) {
		msgs = append(msgs, "El total no coincide con la suma de los productos")
	}

	return model.NewValidationError(msgs)
}

func (v *Validator) messages(in any, describe func(validator.FieldError) string) []string {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return msgs
}

func productMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		switch fe.Tag() {
		case "required":
			return "El nombre es requerido"
		case "max":
			return fmt.Sprintf("El nombre no puede superar los %d caracteres", ProductNameMaxLength)
		}
		return fmt.Sprintf("El nombre debe tener al menos %d caracteres", ProductNameMinLength)
	case "Description":
		if fe.Tag() == "required" {
			return "La descripción es requerida"
		}
		return fmt.Sprintf("La descripción debe tener al menos %d caracteres", ProductDescriptionMinLength)
	case "Price":
		switch fe.Tag() {
		case "required":
			return "El precio es requerido"
		case "money":
			return fmt.Sprintf("El precio puede tener como máximo %d decimales", MoneyDecimals)
		}
		return "El precio debe ser mayor a 0"
	case "Category":
		return "Debe seleccionar una categoría válida"
	case "Image":
		if fe.Tag() == "max" {
			return fmt.Sprintf("La imagen no puede superar los %d caracteres", ImageMaxLength)
		}
		return "La imagen debe ser una URL válida o una ruta local válida (img/archivo.jpg)"
	}
	return fmt.Sprintf("El campo %s no es válido", fe.Field())
}

func orderMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Customer":
		return "Los datos del cliente son requeridos"
	case "Name":
		switch fe.Tag() {
		case "required":
			return "El nombre es requerido"
		case "max":
			return fmt.Sprintf("El nombre no puede superar los %d caracteres", CustomerNameMaxLength)
		}
		return "El nombre solo puede contener letras y espacios"
	case "Phone":
		if fe.Tag() == "required" {
			return "El teléfono es requerido"
		}
		return "El teléfono debe tener formato +569xxxxxxxx o 9xxxxxxxx"
	case "Email":
		if fe.Tag() == "max" {
			return fmt.Sprintf("El email no puede superar los %d caracteres", EmailMaxLength)
		}
		return "El formato del email no es válido"
	case "PaymentMethod":
		if fe.Tag() == "required" {
			return "El método de pago es requerido"
		}
		return "Método de pago no válido"
	case "Products":
		return "Debe incluir al menos un producto"
	case "ProductID":
		return fmt.Sprintf("Producto %d: identificador inválido", itemPosition(fe))
	case "Quantity":
		return fmt.Sprintf("Producto %d: la cantidad debe ser mayor a 0", itemPosition(fe))
	case "UnitPrice":
		if fe.Tag() == "money" {
			return fmt.Sprintf("Producto %d: el precio unitario puede tener como máximo %d decimales", itemPosition(fe), MoneyDecimals)
		}
		return fmt.Sprintf("Producto %d: el precio unitario debe ser mayor a 0", itemPosition(fe))
	case "Total":
		return fmt.Sprintf("El total puede tener como máximo %d decimales", MoneyDecimals)
	}
	return fmt.Sprintf("El campo %s no es válido", fe.Field())
}

// itemPosition returns the 1-based cart position named in the error's namespace.
func itemPosition(fe validator.FieldError) int {
	m := itemIndexPattern.FindStringSubmatch(fe.StructNamespace())
	if m == nil {
		return 0
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return idx + 1
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// money reports whether the amount survives rounding to MoneyDecimals unchanged.
// The field is read from the parent struct because the custom type func hands
// validators a float64.
func money(fl validator.FieldLevel) bool {
	field := reflect.Indirect(fl.Parent()).FieldByName(fl.StructFieldName())
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.Equal(d.Round(MoneyDecimals))
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}
