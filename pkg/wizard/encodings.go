package wizard

// Encodings lists the character sets offered by an encoding combo. The combo is
// editable, so any other name may be entered as well.
func Encodings() []string {
	return []string{
		"UTF-8",
		"UTF-16",
		"UTF-16BE",
		"UTF-16LE",
		"US-ASCII",
		"ISO-8859-1",
		"ISO-8859-2",
		"ISO-8859-5",
		"ISO-8859-15",
		"KOI8-R",
		"windows-1250",
		"windows-1251",
		"windows-1252",
		"EUC-JP",
		"SJIS",
		"GB18030",
		"BIG5",
	}
}
