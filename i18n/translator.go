package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "it":
		switch code {
		case "missing_field":
			msg = "campo obbligatorio mancante"
		case "type_mismatch":
			msg = "tipo non valido"
		case "invalid_payload":
			msg = "payload non valido"
		case "empty_collection":
			msg = "collezione vuota"
		case "unknown_key":
			msg = "chiave sconosciuta"
		case "duplicate_key":
			msg = "chiave duplicata"
		case "schema_definition":
			msg = "schema non valido"
		}
	default: // "en"
		switch code {
		case "missing_field":
			msg = "required field missing"
		case "type_mismatch":
			msg = "type mismatch"
		case "invalid_payload":
			msg = "invalid payload"
		case "empty_collection":
			msg = "empty collection"
		case "unknown_key":
			msg = "unknown key"
		case "duplicate_key":
			msg = "duplicate key"
		case "schema_definition":
			msg = "invalid schema definition"
		}
	}
	if msg == "" {
		return code
	}
	return withDetails(msg, data)
}

// withDetails appends the field and expected type when present.
func withDetails(msg string, data map[string]string) string {
	if len(data) == 0 {
		return msg
	}
	var parts []string
	if f := data["field"]; f != "" {
		parts = append(parts, f)
	}
	if e := data["expected"]; e != "" {
		parts = append(parts, e)
	}
	if len(parts) == 0 {
		return msg
	}
	return msg + " (" + strings.Join(parts, ": ") + ")"
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"it").
func SetLanguage(lang string) {
	if lang != "it" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
