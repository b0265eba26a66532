package route

import (
	"reflect"
	"regexp"
	"runtime"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// closureName matches compiler-generated names of function literals.
var closureName = regexp.MustCompile(`^(func|gowrap)\d+$`)

// handlerName returns the short name of a handler value: the function name for
// funcs and method values, the type name otherwise.
func handlerName(h any) string {
	if h == nil {
		return ""
	}
	v := reflect.ValueOf(h)
	if v.Kind() == reflect.Func {
		if v.IsNil() {
			return ""
		}
		fn := runtime.FuncForPC(v.Pointer())
		if fn == nil {
			return ""
		}
		return shortFuncName(fn.Name())
	}
	t := v.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// shortFuncName reduces a fully qualified function name
// ("example.com/app/api.(*Users).Get-fm") to its last identifier ("Get").
// Function literals have no useful name and yield "".
func shortFuncName(full string) string {
	name := full
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if closureName.MatchString(name) {
		return ""
	}
	return name
}

// defaultSummary title-cases the words of a handler name: "getUser" and
// "get_user" both become "Get User".
func defaultSummary(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}
	// Casers keep state between calls and cannot be shared across goroutines.
	return cases.Title(language.English).String(strings.ToLower(strings.Join(words, " ")))
}

func splitWords(name string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r):
			// Break before an upper-case letter that follows a lower-case one or
			// starts a word after an acronym ("HTTPRoutes" -> "HTTP", "Routes").
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(unicode.IsUpper(runes[i-1]) && i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}
