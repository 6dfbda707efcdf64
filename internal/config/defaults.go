package config

const (
	defaultConfigPath     = "~/.config/lomtag/config.toml"
	projectConfigName     = "lomtag.toml"
	defaultInputPath      = "Dziesmas.csv"
	defaultOutputPath     = "Dziesmas_updated.tsv"
	defaultInputDelimiter = ","
	defaultOutputDelim    = "tab"
	defaultWorkers        = 1
	maxWorkers            = 256
	defaultReportFormat   = ReportFormatTable
	defaultSampleHead     = 15
	defaultSampleTail     = 10
	defaultReportColor    = "auto"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Report formats.
const (
	ReportFormatTable = "table"
	ReportFormatJSON  = "json"
)

// Environment variables consulted when the corresponding path is not configured.
const (
	EnvInput  = "LOMTAG_INPUT"
	EnvOutput = "LOMTAG_OUTPUT"
)

func defaultHeavyRockKeywords() []string { return []string{"rock", "metal", "punk"} }

func defaultDanceKeywords() []string { return []string{"disco", "disko"} }

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Input: Input{
			Delimiter: defaultInputDelimiter,
		},
		Output: Output{
			Delimiter:     defaultOutputDelim,
			IncludeHeader: true,
		},
		Classify: Classify{
			Workers:           defaultWorkers,
			HeavyRockKeywords: defaultHeavyRockKeywords(),
			DanceKeywords:     defaultDanceKeywords(),
		},
		Report: Report{
			Format:     defaultReportFormat,
			SampleHead: defaultSampleHead,
			SampleTail: defaultSampleTail,
			Color:      defaultReportColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
