package models

import "net/http"

// DefaultStatusCode is the status a command responds with unless it sets another one.
const DefaultStatusCode = http.StatusOK

// CmdResponseData is the response information filled in by a command.
// The zero value has no status code, use NewCmdResponseData or Init.
type CmdResponseData struct {
	HTTPStatusCode int

	redirect    string
	hasRedirect bool
}

func NewCmdResponseData() *CmdResponseData {
	data := &CmdResponseData{}
	data.Init()
	return data
}

// Init puts data into the default state: status 200, no redirect.
func (d *CmdResponseData) Init() {
	d.HTTPStatusCode = DefaultStatusCode
	d.redirect = ""
	d.hasRedirect = false
}

// Reset drops the redirect and restores the default status. Calling it
// again on an already reset value changes nothing.
func (d *CmdResponseData) Reset() {
	d.ClearRedirect()
	d.HTTPStatusCode = DefaultStatusCode
}

// SetRedirect replaces the redirect URL. An empty url removes it.
func (d *CmdResponseData) SetRedirect(url string) {
	if url == "" {
		d.ClearRedirect()
		return
	}
	d.redirect = url
	d.hasRedirect = true
}

// ClearRedirect drops the redirect and reports whether there was one.
func (d *CmdResponseData) ClearRedirect() bool {
	if !d.hasRedirect {
		return false
	}
	d.redirect = ""
	d.hasRedirect = false
	return true
}

func (d *CmdResponseData) Redirect() (string, bool) {
	return d.redirect, d.hasRedirect
}

func (d *CmdResponseData) HasRedirect() bool {
	return d.hasRedirect
}
