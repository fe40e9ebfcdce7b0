package cli

const planTemplate = `
=== Plan Details ===

Title:   {{.Title}}
ID:      {{.ID}}
Weekend: {{.WeekendOf}}
Sync:    {{.SyncStatus}}
Updated: {{.LastModified.Format "2006-01-02 15:04:05"}}
{{- if .Activities}}

Activities:
{{- range .Activities}}
  [{{.Slot}}] {{.Name}}{{if .Notes}} ({{.Notes}}){{end}}
{{- end}}
{{- end}}
`
