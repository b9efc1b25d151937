package encode

import "strings"

func MustString(doc *Doc) string {
	d, err := doc.JSON()
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(string(d))
}
