package helpers

// FieldClass returns the wrapper classes for a form field.
func FieldClass(showInvalid bool) string {
	if showInvalid {
		return "field field--invalid"
	}
	return "field"
}

// InputID builds the DOM id of a field input, unique per form.
func InputID(form, field string) string {
	return form + "-" + field
}

// FormID builds the DOM id of a form element; htmx swaps target it.
func FormID(form string) string {
	return form + "-form"
}
