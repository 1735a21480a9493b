package checkout

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"bookstore/internal/entities"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldAddress  = "address"
	FieldQuantity = "quantity"
	FieldNotes    = "notes"

	maxNameLength  = 100
	maxEmailLength = 254
	maxPhoneLength = 20

	msgRequired     = "This field is required."
	msgInvalidChars = "Enter a valid text value."
)

// validateForm возвращает очищенные значения и ошибки по полям.
func validateForm(form entities.CheckoutForm) (entities.OrderCreate, map[string]string) {
	fieldErrors := make(map[string]string)

	name := cleanText(form.Name, FieldName, fieldErrors)
	switch {
	case fieldErrors[FieldName] != "":
	case name == "":
		fieldErrors[FieldName] = msgRequired
	case utf8.RuneCountInString(name) > maxNameLength:
		fieldErrors[FieldName] = "Ensure this value has at most 100 characters."
	}

	email := cleanText(form.Email, FieldEmail, fieldErrors)
	switch {
	case fieldErrors[FieldEmail] != "":
	case email == "":
		fieldErrors[FieldEmail] = msgRequired
	case len(email) > maxEmailLength || !isValidEmail(email):
		fieldErrors[FieldEmail] = "Enter a valid email address."
	}

	phone := cleanText(form.Phone, FieldPhone, fieldErrors)
	switch {
	case fieldErrors[FieldPhone] != "":
	case phone == "":
		fieldErrors[FieldPhone] = msgRequired
	case utf8.RuneCountInString(phone) > maxPhoneLength:
		fieldErrors[FieldPhone] = "Ensure this value has at most 20 characters."
	}

	address := cleanText(form.Address, FieldAddress, fieldErrors)
	if address == "" && fieldErrors[FieldAddress] == "" {
		fieldErrors[FieldAddress] = msgRequired
	}

	quantity := entities.DefaultOrderQuantity
	if raw := strings.TrimSpace(form.Quantity); raw != "" {
		q, err := strconv.ParseInt(raw, 10, 32)
		switch {
		case err != nil && !errors.Is(err, strconv.ErrRange):
			fieldErrors[FieldQuantity] = "Enter a whole number."
		case q < 1:
			fieldErrors[FieldQuantity] = "Ensure this value is greater than or equal to 1."
		case err != nil:
			fieldErrors[FieldQuantity] = "Ensure this value is less than or equal to 2147483647."
		default:
			quantity = int(q)
		}
	}

	return entities.OrderCreate{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Address:  address,
		Quantity: quantity,
		Notes:    cleanText(form.Notes, FieldNotes, fieldErrors),
	}, fieldErrors
}

// cleanText обрезает пробелы; невалидный UTF-8 и NUL база не примет.
func cleanText(raw, field string, fieldErrors map[string]string) string {
	if !utf8.ValidString(raw) || strings.ContainsRune(raw, 0) {
		fieldErrors[field] = msgInvalidChars
		return ""
	}
	return strings.TrimSpace(raw)
}

// isValidEmail принимает только голый адрес, без "Имя <addr>".
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".")
}
