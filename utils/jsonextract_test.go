package utils

import "testing"

func TestExtractJSONObject(t *testing.T) {
	obj := `{"foods":[{"name":"Apple","portion":"1 medium","confidence":0.9}],"nutrition":{"calories":95},"recommendations":["Eat more fiber"]}`

	cases := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"bare object", obj, obj, true},
		{"prose around", "Here is the analysis:\n" + obj + "\nEnjoy!", obj, true},
		{"fenced code block", "```json\n" + obj + "\n```", obj, true},
		{"nested braces in string", `reply: {"name":"weird {food}","n":1} done`, `{"name":"weird {food}","n":1}`, true},
		{"escaped quote in string", `{"name":"he said \"hi\"","n":2}`, `{"name":"he said \"hi\"","n":2}`, true},
		{"no braces", "sorry, I cannot analyze this image", "", false},
		{"unbalanced then balanced", `broken { oops ... {"ok":true}`, `{"ok":true}`, true},
		{"empty", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tc.text)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
