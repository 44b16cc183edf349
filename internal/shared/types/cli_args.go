package types

// CLIArgs represents the command-line arguments shared by every subcommand.
type CLIArgs struct {
	ConfigFile string
	Verbose    bool
}

// AnalyzeArgs holds the flags of the analyze subcommand.
type AnalyzeArgs struct {
	File   string
	Source string
}

// ReportArgs holds the flags of the report subcommand.
type ReportArgs struct {
	Type       string
	Source     string
	File       string
	Export     []string
	Dir        string
	ReportName string
}

// InfoArgs holds the flags of the info subcommand.
type InfoArgs struct {
	CheckUpdate bool
}
