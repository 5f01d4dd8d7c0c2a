package i18n

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "want" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg := t.base(code)
	if msg == "" {
		return code
	}
	return msg + details(data)
}

func (t dictTranslator) base(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "truncated":
			return "バイト数が不足しています"
		case "trailing_data":
			return "末尾に余分なバイトがあります"
		case "no_matching_variant":
			return "該当するレイアウトがありません"
		case "invalid_discriminant":
			return "判別子の値が不明です"
		case "invalid_enum":
			return "不明なコードです"
		case "const_mismatch":
			return "固定値と一致しません"
		case "invalid_number":
			return "数値ではありません"
		case "unknown_symbol":
			return "未知のシンボルです"
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須フィールドが不足しています"
		case "width_mismatch":
			return "コード長がフィールド幅と一致しません"
		case "inconsistent_view":
			return "参照値が書き込まれたバイトと一致しません"
		}
	default: // "en"
		switch code {
		case "truncated":
			return "not enough bytes"
		case "trailing_data":
			return "unexpected trailing bytes"
		case "no_matching_variant":
			return "no matching layout"
		case "invalid_discriminant":
			return "discriminant did not resolve to a known symbol"
		case "invalid_enum":
			return "unknown code"
		case "const_mismatch":
			return "constant mismatch"
		case "invalid_number":
			return "not a decimal number"
		case "unknown_symbol":
			return "unknown symbol"
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required field missing"
		case "width_mismatch":
			return "code width does not match the field width"
		case "inconsistent_view":
			return "view does not match the written bytes"
		}
	}
	return ""
}

// details renders want/got style metadata as a stable suffix.
func details(data map[string]string) string {
	if len(data) == 0 {
		return ""
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		if k == "hint" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+data[k])
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

type holder struct{ tr Translator }

var currentTranslator atomic.Value

func init() { currentTranslator.Store(holder{dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator.Store(holder{dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	currentTranslator.Store(holder{tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Load().(holder).tr.Message(code, data)
}
