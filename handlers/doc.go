// Package handlers serves the organiser wizard over HTTP.
//
// Routes:
//
//	GET  /orga/event/new                  opens a page and renders the organiser step
//	POST /orga/event/new/{page}/source    name input; answers with the new slug input or 204
//	POST /orga/event/new/{page}/target    first slug edit; stops automatic updates, 204
//	POST /api/slug                        stateless slug preview
//
// Source and target posts come from htmx. Unknown or expired pages answer 404.
package handlers
