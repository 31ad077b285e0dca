package i18n

// Translator retrieves localized messages for diagnostic codes. data provides
// optional parameters to embed in the message (for example, "name" or
// "index").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. The "en"
// dictionary is canonical: its renderings are the fixed message forms the
// accessor layer is specified against.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	get := func(k string) string {
		if data == nil {
			return ""
		}
		return data[k]
	}
	switch t.lang {
	case "ja":
		switch code {
		case "null_node":
			return "ノードが null です"
		case "null_object":
			return "オブジェクトが null です"
		case "null_array":
			return "配列が null です"
		case "not_object":
			return "ノードは JSON オブジェクトではありません"
		case "not_array":
			return "ノードは JSON 配列ではありません"
		case "not_value":
			return "ノードは JSON 値ではありません"
		case "missing_property":
			return "オブジェクトにプロパティ '" + get("name") + "' がありません"
		case "null_property":
			return "プロパティ '" + get("name") + "' が null です"
		case "invalid_property":
			return "プロパティ '" + get("name") + "' が不正です。"
		case "not_string":
			return "JSON 値は文字列ではありません"
		case "not_integer":
			return "JSON 値は整数ではありません"
		case "not_boolean":
			return "JSON 値は真偽値ではありません"
		case "not_guid":
			return "JSON 値は GUID ではありません"
		case "not_absolute_uri":
			return "JSON 値は絶対 URI ではありません"
		case "element_kind":
			return "インデックス " + get("index") + " のノードは JSON " + get("kind") + " ではありません"
		case "invalid_element":
			return "インデックス " + get("index") + " の要素が不正です。"
		case "canceled":
			return "評価前に走査がキャンセルされました"
		}
	default: // "en"
		switch code {
		case "null_node":
			return "Node is null."
		case "null_object":
			return "Object is null."
		case "null_array":
			return "Array is null."
		case "not_object":
			return "Node is not a JSON object."
		case "not_array":
			return "Node is not a JSON array."
		case "not_value":
			return "Node is not a JSON value."
		case "missing_property":
			return "Object does not have a property named '" + get("name") + "'."
		case "null_property":
			return "Property '" + get("name") + "' is null."
		case "invalid_property":
			return "Property '" + get("name") + "' is invalid."
		case "not_string":
			return "JSON value is not a string."
		case "not_integer":
			return "JSON value is not an integer."
		case "not_boolean":
			return "JSON value is not a boolean."
		case "not_guid":
			return "JSON value is not a GUID."
		case "not_absolute_uri":
			return "JSON value is not an absolute URI."
		case "element_kind":
			return "Node at index " + get("index") + " is not a JSON " + get("kind") + "."
		case "invalid_element":
			return "Element at index " + get("index") + " is invalid."
		case "canceled":
			return "Traversal was canceled before the element was evaluated."
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
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
