// Package components holds the shared page frame and widgets of the UI.
// Components are written in templ; run `templ generate` after editing a
// .templ file.
package components

// NoticeKind selects the styling of a notice.
type NoticeKind string

// Notice kinds.
const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)
