package assets

import _ "embed"

// HelpText is the document printed by `gifterm help`.
//
//go:embed help.txt
var HelpText string
