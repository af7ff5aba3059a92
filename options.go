package udt

import (
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/udt/markup"
	"github.com/npillmayer/udt/template"
)

// Configuration keys read by OptionsFromConfig.
const (
	KeyDocumentTag       = "udt.document-tag"
	KeyStyleTag          = "udt.style-tag"
	KeyTemplateTag       = "udt.template-tag"
	KeyMaxExpansionDepth = "udt.max-expansion-depth"
	KeyUniqueIDs         = "udt.unique-ids"
)

// Options control a compilation.
type Options struct {
	Tags              markup.Tags // names of the wrapper, style and template elements
	MaxExpansionDepth int         // limit for nested template expansion
	UniqueIDs         bool        // reject duplicate ids within a document
}

// DefaultOptions returns the options used if nothing is configured.
func DefaultOptions() Options {
	return Options{
		Tags:              markup.DefaultTags,
		MaxExpansionDepth: template.DefaultMaxDepth,
		UniqueIDs:         true,
	}
}

// OptionsFromConfig reads options from a configuration. Keys not set in
// conf keep their default values.
func OptionsFromConfig(conf schuko.Configuration) Options {
	opts := DefaultOptions()
	if conf == nil {
		return opts
	}
	if conf.IsSet(KeyDocumentTag) {
		opts.Tags.Document = conf.GetString(KeyDocumentTag)
	}
	if conf.IsSet(KeyStyleTag) && conf.GetString(KeyStyleTag) != "" {
		opts.Tags.Style = conf.GetString(KeyStyleTag)
	}
	if conf.IsSet(KeyTemplateTag) && conf.GetString(KeyTemplateTag) != "" {
		opts.Tags.Template = conf.GetString(KeyTemplateTag)
	}
	if conf.IsSet(KeyMaxExpansionDepth) {
		if d := conf.GetInt(KeyMaxExpansionDepth); d > 0 {
			opts.MaxExpansionDepth = d
		}
	}
	if conf.IsSet(KeyUniqueIDs) {
		opts.UniqueIDs = conf.GetBool(KeyUniqueIDs)
	}
	return opts
}
