package catalogpromo

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Inspect the catalog promotion action registry"
	MsgActionsShort      = "List the registered promotion actions"
	MsgActionsShowShort  = "Show a registered promotion action"
	MsgActionsCheckShort = "Validate a promotion action configuration"
	MsgActionsCheckLong  = "Check runs the configuration validation of the action registered for <type> against the given key=value pairs. Values are read as YAML scalars, so amount=10 is an integer and percentage=0.5 a number."
	MsgValidateShort     = "Build the action catalog and report problems"
	MsgValidateLong      = "Validate builds the action catalog and parses every page element definition. It fails on missing tag attributes, unknown handlers, invalid options and, with --strict, on types declared by more than one service."
	MsgPricesShort       = "Read catalog promotion prices from a product page snapshot"
	MsgPricesLong        = "Prices reads the crossed-out and new price of a product page saved as HTML. Element locators come from [elements.catalog_promotion] in the configuration."
	MsgVersionShort      = "Print version information"
	MsgCompletionShort   = "Generate shell completion script"
	MsgCompletionLong    = "Generate the autocompletion script for catalogpromo for the specified shell."

	// Examples
	MsgActionsExample = `  catalogpromo actions
  catalogpromo actions --format json
  catalogpromo actions show percentage_discount
  catalogpromo actions check percentage_discount percentage=0.25`

	// Status messages
	MsgVersionFormat = "catalogpromo %s (commit %s, built %s)"

	// Error messages
	MsgErrNoCommand      = "no command specified"
	MsgErrLoadConfig     = "failed to load configuration"
	MsgErrBuildCatalog   = "failed to build action catalog"
	MsgErrAssignment     = "argument %q is not a key=value pair"
	MsgErrElementConfig  = "invalid element definitions for page '%s'"
	MsgErrInvalidConfig  = "configuration for action '%s' is invalid"
	MsgErrReadPagePrices = "failed to read prices from %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file layered over the defaults (.toml, .yaml)"
	MsgFlagStrict  = "Fail when an action type is declared by more than one service"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagFormat  = "Output format (auto, term, text, json, yaml, toml, markdown)"
	MsgFlagPage    = "Element definitions to use from [elements.<page>]"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/actions-long.txt
	msgActionsLongRaw string
	MsgActionsLong    = strings.TrimSpace(msgActionsLongRaw)
)
