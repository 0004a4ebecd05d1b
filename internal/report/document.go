package report

// Image is an image embedded in a report.
type Image struct {
	Data []byte
	Type string // "PNG", "JPG" or "GIF"
}

// Header is the property information printed above the table.
type Header struct {
	PropertyName string
	Address      string
	OwnerTitle   string
	Logo         *Image // Printed in the top left corner if set
}

// Signatory is the committee member signing a report.
type Signatory struct {
	Name      string
	Position  string
	Signature *Image // Printed above the name if set
}

// Listing is a table of plain text cells. Rows shorter than Columns are
// padded with empty cells.
type Listing struct {
	Columns []string
	Rows    [][]string
}

// Document is everything needed to render a report.
type Document struct {
	Title     string
	Subtitle  string
	Currency  string // ISO 4217 code used to format amounts
	Header    Header
	Table     Table
	Listing   *Listing // Rendered instead of Table if set
	Signatory *Signatory
}
