// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package httpopt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/z5labs/vfsopt"
	"github.com/z5labs/vfsopt/connect"
	"github.com/z5labs/vfsopt/internal/coerce"
	"github.com/z5labs/vfsopt/optional"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const cookiesName = "http:cookies"

func init() {
	vfsopt.Register(cookiesName, func(value json.RawMessage) (vfsopt.Option, error) {
		return NewCookiesFromJSON(value)
	})
}

// Cookies is the list of cookies to add to each HTTP request.
//
// Its JSON value is an array of cookie objects:
//
//	[
//	    {
//	        "name"      : "required",
//	        "value"     : "optional",
//	        "domain"    : "optional",
//	        "path"      : "optional",
//	        "isOnlyHttp": false,
//	        "isSecure"  : false,
//	        "creationDateTime": "2000-01-01T00:00:00",
//	        "expiryDateTime"  : "2999-12-31T23:59:59",
//	        "attributes": [ { "name": "required", "value": "optional" } ]
//	    }
//	]
//
// Only the name element of a cookie is required. Absent elements are
// elided on serialization. Duplicate cookie names across the list are
// allowed; duplicate attribute names within one cookie are not.
type Cookies struct {
	values []CookieSource
}

// NewCookies returns a Cookies holding the given sources.
func NewCookies(values []CookieSource) *Cookies {
	vs := make([]CookieSource, len(values))
	copy(vs, values)
	return &Cookies{values: vs}
}

// NewCookiesFromJSON constructs a Cookies from its JSON value. Every
// element is constructed eagerly; the first invalid cookie fails the
// whole option.
func NewCookiesFromJSON(value json.RawMessage) (*Cookies, error) {
	res, err := coerce.Parse(cookiesName, value)
	if err != nil {
		return nil, err
	}
	if !res.IsArray() {
		return nil, vfsopt.InvalidFormatError{Option: cookiesName, Expected: "a JSON array of cookies"}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, vfsopt.InvalidFormatError{Option: cookiesName, Expected: "a JSON array of cookies", Cause: err}
	}

	values := make([]CookieSource, 0, len(items))
	for _, item := range items {
		cs, err := NewCookieSource(item)
		if err != nil {
			return nil, err
		}
		values = append(values, cs)
	}
	return &Cookies{values: values}, nil
}

// Name implements the vfsopt.Option interface.
func (o *Cookies) Name() string {
	return cookiesName
}

// Value implements the vfsopt.Option interface.
func (o *Cookies) Value() any {
	vs := make([]any, 0, len(o.values))
	for _, c := range o.values {
		vs = append(vs, c.toJSON())
	}
	return vs
}

// Apply implements the vfsopt.Option interface.
func (o *Cookies) Apply(opts *connect.Options) error {
	cs := make([]connect.Cookie, 0, len(o.values))
	for _, c := range o.values {
		cs = append(cs, c.Cookie())
	}
	err := opts.SetCookies(cs)
	if err != nil {
		return vfsopt.ApplyError{Option: cookiesName, Cause: err}
	}
	return nil
}

// String returns the diagnostic form {"http:cookies": [...]}.
func (o *Cookies) String() string {
	return vfsopt.Sprint(o)
}

// localDateTimeLayout matches naive local date-times like
// "2007-12-03T10:15:30", with an optional fractional second.
const localDateTimeLayout = "2006-01-02T15:04:05.999999999"

// localDateTime keeps the exact input text next to the parsed instant
// so serialization reproduces the input byte for byte.
type localDateTime struct {
	text string
	time time.Time
}

// CookieSource is the source value for one cookie. It is immutable and
// owned by a Cookies option; see Cookies for the JSON shape.
//
// A CookieSource carries no time zone. Its date-times are naive local
// values and only become UTC instants when exported via Cookie.
type CookieSource struct {
	name       string
	value      optional.Value[string]
	domain     optional.Value[string]
	path       optional.Value[string]
	onlyHTTP   optional.Value[bool]
	secure     optional.Value[bool]
	creation   optional.Value[localDateTime]
	expiry     optional.Value[localDateTime]
	attributes *orderedmap.OrderedMap[string, optional.Value[string]]
}

type cookieJSON struct {
	Name       *string         `json:"name"`
	Value      *string         `json:"value"`
	Domain     *string         `json:"domain"`
	Path       *string         `json:"path"`
	OnlyHTTP   *bool           `json:"isOnlyHttp"`
	Secure     *bool           `json:"isSecure"`
	Creation   *string         `json:"creationDateTime"`
	Expiry     *string         `json:"expiryDateTime"`
	Attributes []attributeJSON `json:"attributes"`
}

type attributeJSON struct {
	Name  *string `json:"name"`
	Value *string `json:"value"`
}

// NewCookieSource constructs a CookieSource from the JSON object
// representing one cookie. Only the name element is required.
func NewCookieSource(value json.RawMessage) (CookieSource, error) {
	res, err := coerce.Parse(cookiesName, value)
	if err != nil {
		return CookieSource{}, err
	}
	if !res.IsObject() {
		return CookieSource{}, vfsopt.InvalidFormatError{Option: cookiesName, Expected: "a JSON array of cookies"}
	}

	var raw cookieJSON
	if err := json.Unmarshal(value, &raw); err != nil {
		return CookieSource{}, vfsopt.InvalidFormatError{Option: cookiesName, Expected: "a JSON array of cookies", Cause: err}
	}
	if raw.Name == nil {
		return CookieSource{}, vfsopt.MissingInputError{Option: cookiesName, Element: "name"}
	}

	cs := CookieSource{
		name:   *raw.Name,
		value:  fromPtr(raw.Value),
		domain: fromPtr(raw.Domain),
		path:   fromPtr(raw.Path),
	}
	cs.onlyHTTP = fromPtr(raw.OnlyHTTP)
	cs.secure = fromPtr(raw.Secure)

	cs.creation, err = parseLocalDateTime(raw.Creation)
	if err != nil {
		return CookieSource{}, err
	}
	cs.expiry, err = parseLocalDateTime(raw.Expiry)
	if err != nil {
		return CookieSource{}, err
	}

	cs.attributes, err = parseAttributes(cs.name, raw.Attributes)
	if err != nil {
		return CookieSource{}, err
	}
	return cs, nil
}

func fromPtr[T any](p *T) optional.Value[T] {
	if p == nil {
		return optional.Value[T]{}
	}
	return optional.ValueOf(*p)
}

func parseLocalDateTime(p *string) (optional.Value[localDateTime], error) {
	if p == nil {
		return optional.Value[localDateTime]{}, nil
	}
	t, err := time.Parse(localDateTimeLayout, *p)
	if err != nil {
		return optional.Value[localDateTime]{}, vfsopt.InvalidValueError{
			Option:  cookiesName,
			Message: fmt.Sprintf("must contain local date-times like [2007-12-03T10:15:30]: %q", *p),
			Cause:   err,
		}
	}
	return optional.ValueOf(localDateTime{text: *p, time: t}), nil
}

// parseAttributes builds the ordered attribute mapping in a single
// insertion pass, failing fast on the first duplicate name so the
// error can say which duplicate, in which cookie.
func parseAttributes(cookie string, raw []attributeJSON) (*orderedmap.OrderedMap[string, optional.Value[string]], error) {
	if raw == nil {
		return nil, nil
	}

	attrs := orderedmap.New[string, optional.Value[string]]()
	for _, a := range raw {
		if a.Name == nil {
			return nil, vfsopt.MissingInputError{Option: cookiesName, Element: "attributes[].name"}
		}
		if _, seen := attrs.Get(*a.Name); seen {
			return nil, vfsopt.InvalidValueError{
				Option:  cookiesName,
				Message: fmt.Sprintf("must not repeat attribute name [%s] in cookie [%s]", *a.Name, cookie),
			}
		}
		attrs.Set(*a.Name, fromPtr(a.Value))
	}
	return attrs, nil
}

// Name returns the cookie name.
func (c CookieSource) Name() string {
	return c.name
}

// toJSON projects the cookie back to its JSON object, eliding every
// absent element.
func (c CookieSource) toJSON() map[string]any {
	m := map[string]any{"name": c.name}
	if v, ok := c.value.Value(); ok {
		m["value"] = v
	}
	if v, ok := c.domain.Value(); ok {
		m["domain"] = v
	}
	if v, ok := c.path.Value(); ok {
		m["path"] = v
	}
	if v, ok := c.onlyHTTP.Value(); ok {
		m["isOnlyHttp"] = v
	}
	if v, ok := c.secure.Value(); ok {
		m["isSecure"] = v
	}
	if v, ok := c.creation.Value(); ok {
		m["creationDateTime"] = v.text
	}
	if v, ok := c.expiry.Value(); ok {
		m["expiryDateTime"] = v.text
	}
	if c.attributes != nil {
		attrs := make([]any, 0, c.attributes.Len())
		for pair := c.attributes.Oldest(); pair != nil; pair = pair.Next() {
			a := map[string]any{"name": pair.Key}
			if v, ok := pair.Value.Value(); ok {
				a["value"] = v
			}
			attrs = append(attrs, a)
		}
		m["attributes"] = attrs
	}
	return m
}

// Cookie exports the source as the cookie type the transport consumes.
// Naive date-times become UTC instants here.
func (c CookieSource) Cookie() connect.Cookie {
	ck := connect.Cookie{
		Name:     c.name,
		Value:    c.value.OrElse(""),
		Domain:   c.domain.OrElse(""),
		Path:     c.path.OrElse(""),
		HTTPOnly: c.onlyHTTP.OrElse(false),
		Secure:   c.secure.OrElse(false),
	}
	if v, ok := c.creation.Value(); ok {
		ck.Created = v.time.UTC()
	}
	if v, ok := c.expiry.Value(); ok {
		ck.Expires = v.time.UTC()
	}
	if c.attributes != nil {
		attrs := orderedmap.New[string, optional.Value[string]]()
		for pair := c.attributes.Oldest(); pair != nil; pair = pair.Next() {
			attrs.Set(pair.Key, pair.Value)
		}
		ck.Attributes = attrs
	}
	return ck
}
