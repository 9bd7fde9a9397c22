// Package countries provides the HTTP client for the country collection
// endpoint: a filterable, sortable, offset-paginated list of country records
// whose total match count travels in the X-Total-Count response header.
package countries
