package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Age"
	AppID       = "com.github.tartampluch.go-age"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
	// ExitCodeInvalid is returned by the headless mode when the form has field errors.
	ExitCodeInvalid = 2
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion = "version"
	FlagDebug   = "debug"
	FlagDay     = "day"
	FlagMonth   = "month"
	FlagYear    = "year"
	FlagVCard   = "vcard"
	FlagICS     = "ics"

	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stdout"
	FlagDescDay     = "Day of birth (DD), runs without a window"
	FlagDescMonth   = "Month of birth (MM), runs without a window"
	FlagDescYear    = "Year of birth (YYYY), runs without a window"
	FlagDescVCard   = "Read the date of birth from a .vcf file, runs without a window"
	FlagDescICS     = "Also print an iCalendar feed for the birthday"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
	MsgResultOutput  = "%s years\n%s months\n%s days\n"
	MsgFieldOutput   = "%s: %s\n"
	MsgContactOutput = "Contact: %s\n"
)

// -----------------------------------------------------------------------------
// Form Fields & Validation Rules
// -----------------------------------------------------------------------------

const (
	FieldNameDay   = "day"
	FieldNameMonth = "month"
	FieldNameYear  = "year"

	MaxDayValue    = 31
	MaxMonthValue  = 12
	YearMinLength  = 4
	MinYear        = 1
	DayMaxDigits   = 2
	MonthMaxDigits = 2
	YearMaxDigits  = 4

	// DateSeparator joins the raw fields before the day-first parse (DD/MM/YYYY).
	DateSeparator = "/"

	// ResultPlaceholder is displayed for counters that are zero or not computed yet.
	ResultPlaceholder = "--"
)

// Validation error codes, used as translation keys suffixes and by the CLI.
const (
	CodeRequired     = "required"
	CodeInvalidDay   = "invalid_day"
	CodeInvalidMonth = "invalid_month"
	CodeFutureYear   = "future_year"
	CodeInvalidYear  = "invalid_year"
	CodeInvalidDate  = "invalid_date"
)

// Canonical validation messages (single locale).
const (
	MsgFieldRequired = "This field is required"
	MsgInvalidDay    = "Must be a valid day"
	MsgInvalidMonth  = "Must be a valid month"
	MsgFutureYear    = "Must be in the past"
	MsgInvalidYear   = "Must be a valid year"
	MsgInvalidDate   = "Must be a valid date"
)

// -----------------------------------------------------------------------------
// UI Constants
// -----------------------------------------------------------------------------

const (
	WindowWidth  = 520
	WindowHeight = 420

	// SupportedLanguage is the only bundled locale.
	SupportedLanguage = "en"

	LayoutColumnsFields = 3

	// Unit names used when no translation is available.
	FallbackUnitYears  = "years"
	FallbackUnitMonths = "months"
	FallbackUnitDays   = "days"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle   = "win_title"
	TKeyLblDay     = "lbl_day"
	TKeyLblMonth   = "lbl_month"
	TKeyLblYear    = "lbl_year"
	TKeyHintDay    = "hint_day"
	TKeyHintMonth  = "hint_month"
	TKeyHintYear   = "hint_year"
	TKeyBtnSubmit  = "btn_submit"
	TKeyUnitYears  = "unit_years"  // Plural, requires Count
	TKeyUnitMonths = "unit_months" // Plural, requires Count
	TKeyUnitDays   = "unit_days"   // Plural, requires Count
	TKeyLblFooter  = "lbl_footer"  // Requires Version

	// TKeyErrPrefix is prepended to a validation code to build its translation key.
	TKeyErrPrefix = "err_"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Age//Engine//EN"
	ICalCalName = "Birthday"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goage"

	// ICalOccurrences is the number of yearly events in an exported calendar.
	ICalOccurrences = 3
	UIDHashLength   = 8

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"

	FormatUID       = "%04d%02d%02d-%s@%s"
	FormatSummary   = "Birthday: %s (%d)"
	FormatTwoDigit  = "%02d"
	FormatFourDigit = "%04d"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	FallbackName = "Unknown"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrVCardParse     = "failed to parse vCard stream"
	ErrVCardNoBday    = "no contact with a full date of birth"
	ErrVCardOpen      = "failed to open vCard file"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
	ErrNoBirthDate    = "no valid date of birth to export"
	ErrWriteOutput    = "failed to write output"
	ErrFlagsExclusive = "-vcard cannot be combined with -day/-month/-year"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgHeadless      = "Running without a window"
	MsgSubmit        = "Age calculation requested"
	MsgValidationErr = "Date of birth rejected"
	MsgAgeComputed   = "Age computed"
	MsgFieldEdited   = "Form field edited"
	MsgSkippedDate   = "Skipping contact without a usable date of birth"
	MsgContactFound  = "Date of birth imported from contact"
	MsgCalendarBuilt = "Birthday calendar generated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyField     = "field"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyYears     = "years"
	LogKeyMonths    = "months"
	LogKeyDays      = "days"
	LogKeyErrors    = "errors"
	LogKeyResult    = "result"
	LogKeySizeBytes = "size_bytes"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyBuilt   = "built"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompEngine = "engine"
	CompVCard  = "vcard"
	CompICal   = "ical"
	CompMain   = "main"
	CompI18n   = "i18n"
)
