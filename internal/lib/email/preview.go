package email

// PreviewData holds sample data for each template, keyed by template name.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserName": "Devin Sanders",
	},
}
