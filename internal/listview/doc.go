// Package listview implements the controller that keeps pagination offset,
// page size, the active filter, and sort order synchronized between the
// collection endpoint and the rendered table.
package listview
