// Package xcatalog is a fixed catalog of named regular expression patterns.
// Each entry has a stable code, a name and the pattern source (its tag).
// The catalog is built once at init and is read only afterwards.
package xcatalog

import "strconv"

// Pattern identifies one entry of the catalog. Its value is the entry's code,
// codes are never reassigned and new patterns are only appended.
type Pattern int

const (
	// EmailAddress email address
	EmailAddress Pattern = iota
	// DomainName domain name
	DomainName
	// WebURL http or https url
	WebURL
	// UserID user id
	UserID
	// FixedLinePhoneJP fixed line phone (Japan)
	FixedLinePhoneJP
	// FixedLinePhoneWithHyphenJP fixed line phone with hyphen (Japan)
	FixedLinePhoneWithHyphenJP
	// CellPhoneJP cell phone (Japan)
	CellPhoneJP
	// CellPhoneWithHyphenJP cell phone with hyphen (Japan)
	CellPhoneWithHyphenJP
	// Password at least one digit, one lower case and one upper case letter
	Password
	// Date date in yyyyMMdd format
	Date
	// DateWithHyphen date in yyyy-MM-dd format
	DateWithHyphen
	// DateWithSlash date in yyyy/MM/dd format
	DateWithSlash
	// PostCodeJP post code (Japan)
	PostCodeJP
	// XMLFile xml file name
	XMLFile
	// IPAddress IPv4 address
	IPAddress
	// IPAddressWithPort IPv4 address with port
	IPAddressWithPort
	// Numeric ascii digits
	Numeric
	// AlphanumericCharacter ascii letters and digits
	AlphanumericCharacter
	// Alphabet ascii letters
	Alphabet
	// AlphabetUpperCase upper case ascii letters
	AlphabetUpperCase
	// AlphabetLowerCase lower case ascii letters
	AlphabetLowerCase
	// Hiragana hiragana block (U+3041 to U+309F)
	Hiragana
	// Katakana katakana block (U+30A0 to U+30FF)
	Katakana
	// HalfWidthKatakana half width katakana (U+FF66 to U+FF9F)
	HalfWidthKatakana
	// Kanji CJK unified ideographs (U+4E00 to U+9FFF)
	Kanji
	// FullWidthNumeric full width digits
	FullWidthNumeric
	// FullWidthAlphanumeric full width letters and digits
	FullWidthAlphanumeric
	// JSONFile json file name
	JSONFile
	// YAMLFile yaml or yml file name
	YAMLFile
	// CSVFile csv file name
	CSVFile
	// TextFile txt file name
	TextFile
	// JavaFile java source file name
	JavaFile
	// PropertiesFile properties file name
	PropertiesFile
	// SQLFile sql file name
	SQLFile

	numPatterns
)

const (
	ipv4Octet = `([1-9]?[0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])`
	ipv4      = `(` + ipv4Octet + `\.){3}` + ipv4Octet
	fileStem  = `([a-zA-Z]+-?)+[a-zA-Z0-9]+\.`
)

// table is indexed by code. Japanese ranges are literal characters, not
// escapes, so the tags compile the same way under any engine.
var table = [numPatterns]Entry{
	{EmailAddress.Code(), "EMAIL_ADDRESS", `\w+([-+.]\w+)*@\w+([-.]\w+)*\.\w+([-.]\w+)*`},
	{DomainName.Code(), "DOMAIN_NAME", `[a-zA-Z0-9][a-zA-Z0-9-]{1,61}[a-zA-Z0-9]\.[a-zA-Z]{2,}`},
	{WebURL.Code(), "WEB_URL", `(http|https)://([\w-]+\.)+[\w-]+(/[\w-./?%&=]*)?`},
	{UserID.Code(), "USER_ID", `[a-zA-Z0-9_\-.]`},
	{FixedLinePhoneJP.Code(), "FIXED_LINE_PHONE_JP", `0\d\d{4}\d{4}`},
	{FixedLinePhoneWithHyphenJP.Code(), "FIXED_LINE_PHONE_WITH_HYPHEN_JP", `0\d-\d{4}-\d{4}`},
	{CellPhoneJP.Code(), "CELL_PHONE_JP", `(070|080|090)\d{4}\d{4}`},
	{CellPhoneWithHyphenJP.Code(), "CELL_PHONE_WITH_HYPHEN_JP", `(070|080|090)-\d{4}-\d{4}`},
	{Password.Code(), "PASSWORD", `(?=.*\d)(?=.*[a-z])(?=.*[A-Z]).`},
	{Date.Code(), "DATE", `\d{4}\d{1,2}\d{1,2}`},
	{DateWithHyphen.Code(), "DATE_WITH_HYPHEN", `\d{4}-\d{1,2}-\d{1,2}`},
	{DateWithSlash.Code(), "DATE_WITH_SLASH", `\d{4}/\d{1,2}/\d{1,2}`},
	{PostCodeJP.Code(), "POST_CODE_JP", `\d{3}-\d{4}`},
	{XMLFile.Code(), "XML_FILE", fileStem + `[x|X][m|M][l|L]`},
	{IPAddress.Code(), "IP_ADDRESS", ipv4},
	{IPAddressWithPort.Code(), "IP_ADDRESS_WITH_PORT", ipv4 + `:([1-9][0-9]{3}|[1-9][0-9]{2}|[1-9][0-9]{1})`},
	{Numeric.Code(), "NUMERIC", `[0-9]+`},
	{AlphanumericCharacter.Code(), "ALPHANUMERIC_CHARACTER", `[A-Za-z0-9]+`},
	{Alphabet.Code(), "ALPHABET", `[A-Za-z]+`},
	{AlphabetUpperCase.Code(), "ALPHABET_UPPER_CASE", `[A-Z]+`},
	{AlphabetLowerCase.Code(), "ALPHABET_LOWER_CASE", `[a-z]+`},
	{Hiragana.Code(), "HIRAGANA", "[ぁ-ゟ]+"},
	{Katakana.Code(), "KATAKANA", "[゠-ヿ]+"},
	{HalfWidthKatakana.Code(), "HALF_WIDTH_KATAKANA", "[ｦ-ﾟ]+"},
	{Kanji.Code(), "KANJI", "[一-鿿]+"},
	{FullWidthNumeric.Code(), "FULL_WIDTH_NUMERIC", "[０-９]+"},
	{FullWidthAlphanumeric.Code(), "FULL_WIDTH_ALPHANUMERIC", "[０-９Ａ-Ｚａ-ｚ]+"},
	{JSONFile.Code(), "JSON_FILE", fileStem + `[j|J][s|S][o|O][n|N]`},
	{YAMLFile.Code(), "YAML_FILE", fileStem + `([y|Y][a|A][m|M][l|L]|[y|Y][m|M][l|L])`},
	{CSVFile.Code(), "CSV_FILE", fileStem + `[c|C][s|S][v|V]`},
	{TextFile.Code(), "TEXT_FILE", fileStem + `[t|T][x|X][t|T]`},
	{JavaFile.Code(), "JAVA_FILE", fileStem + `[j|J][a|A][v|V][a|A]`},
	{PropertiesFile.Code(), "PROPERTIES_FILE", fileStem + `[p|P][r|R][o|O][p|P][e|E][r|R][t|T][i|I][e|E][s|S]`},
	{SQLFile.Code(), "SQL_FILE", fileStem + `[s|S][q|Q][l|L]`},
}

// Code return the stable code of p
func (p Pattern) Code() int {
	return int(p)
}

// Valid reports whether p names an entry of the catalog
func (p Pattern) Valid() bool {
	return p >= 0 && p < numPatterns
}

// Entry return the catalog entry of p. It panics if p is not Valid, which can
// only happen when a Pattern is built from an unchecked integer.
func (p Pattern) Entry() Entry {
	if !p.Valid() {
		panic(&UnknownPatternError{Ref: p.String()})
	}
	return table[p]
}

// Name return the symbolic name of p, e.g. "EMAIL_ADDRESS"
func (p Pattern) Name() string {
	return p.Entry().Name
}

// Tag return the regular expression source of p
func (p Pattern) Tag() string {
	return p.Entry().Tag
}

func (p Pattern) String() string {
	if !p.Valid() {
		return "Pattern(" + strconv.Itoa(int(p)) + ")"
	}
	return table[p].Name
}
