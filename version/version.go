package version

// RootCmdVersion is the version string reported by the root command.
var RootCmdVersion = "1.0.0"

// CfgVersion is the config file schema version this binary understands.
// Config files carrying any other config_version are rejected.
var CfgVersion = 1
