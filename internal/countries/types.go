package countries

// Country is one record from the collection endpoint. Records are immutable
// once fetched; the client and controller never modify them.
type Country struct {
	Name         string `json:"name"`
	Capital      string `json:"capital"`
	CurrencyName string `json:"currencyName"`
	LanguageName string `json:"languageName"`
	FlagCode     string `json:"flagCode"`
}

// ListResponse mirrors the body of the list endpoint.
type ListResponse struct {
	Items []Country `json:"items"`
}

// Page is one bounded slice of the collection plus the total match count
// (ignoring pagination). Each Page is superseded entirely by the next fetch.
type Page struct {
	Items      []Country
	TotalCount int
}

// Filterable and sortable field names understood by the collection endpoint.
const (
	FieldName     = "name"
	FieldCapital  = "capital"
	FieldCurrency = "currency"
	FieldLanguage = "language"
)

// Fields lists the filterable/sortable fields in display order.
func Fields() []string {
	return []string{FieldName, FieldCapital, FieldCurrency, FieldLanguage}
}

// ValidField reports whether field names a filterable/sortable attribute.
func ValidField(field string) bool {
	switch field {
	case FieldName, FieldCapital, FieldCurrency, FieldLanguage:
		return true
	}
	return false
}

// Field returns the value of the named filterable/sortable field, or the
// empty string for unknown names. The flag code is display-only and is not
// addressable here.
func (c Country) Field(name string) string {
	switch name {
	case FieldName:
		return c.Name
	case FieldCapital:
		return c.Capital
	case FieldCurrency:
		return c.CurrencyName
	case FieldLanguage:
		return c.LanguageName
	}
	return ""
}
