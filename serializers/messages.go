package serializers

// Message keys. Validation tags double as keys so that a validator.FieldError
// translates through the same catalog.
const (
	msgRequired       = "required"
	msgNotBlank       = "notblank"
	msgMaxLength      = "max"
	msgMinValue       = "min"
	msgPasswordLength = "passwordlen"
	msgChoice         = "gender"
	msgDate           = "datetime"
	msgNull           = "null"
	msgInvalidString  = "invalid_string"
	msgInvalidInteger = "invalid_integer"
	msgUnique         = "unique"
	msgNotObject      = "not_object"
	msgParseError     = "parse_error"

	MsgNotFound    = "not_found"
	MsgServerError = "server_error"
)

var catalogs = map[string]map[string]string{
	"en": {
		msgRequired:       "This field is required.",
		msgNotBlank:       "This field may not be blank.",
		msgMaxLength:      "Ensure this field has no more than {0} characters.",
		msgMinValue:       "Ensure this value is greater than or equal to {0}.",
		msgPasswordLength: "Ensure this field has no more than 72 bytes.",
		msgChoice:         `"{0}" is not a valid choice.`,
		msgDate:           "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.",
		msgNull:           "This field may not be null.",
		msgInvalidString:  "Not a valid string.",
		msgInvalidInteger: "A valid integer is required.",
		msgUnique:         "{0} with this {1} already exists.",
		msgNotObject:      "Invalid data. Expected a dictionary, but got {0}.",
		msgParseError:     "JSON parse error - {0}",
		MsgNotFound:       "Not found.",
		MsgServerError:    "A server error occurred.",
	},
	"ja": {
		msgRequired:       "この項目は必須です。",
		msgNotBlank:       "この項目は空にできません。",
		msgMaxLength:      "この項目が{0}文字より長くならないようにしてください。",
		msgMinValue:       "この値は{0}以上にしてください。",
		msgPasswordLength: "この項目が72バイトより長くならないようにしてください。",
		msgChoice:         `"{0}"は有効な選択肢ではありません。`,
		msgDate:           "日付の形式が違います。以下のどれかの形式にしてください: YYYY-MM-DD。",
		msgNull:           "この項目はnullにできません。",
		msgInvalidString:  "有効な文字列を入力してください。",
		msgInvalidInteger: "有効な整数を入力してください。",
		msgUnique:         "この {1} を持った {0} が既に存在します。",
		msgNotObject:      "不正なデータです。dictionaryを期待しましたが、{0}を受け取りました。",
		msgParseError:     "JSONパースエラー - {0}",
		MsgNotFound:       "見つかりませんでした。",
		MsgServerError:    "サーバーエラーが発生しました。",
	},
}
