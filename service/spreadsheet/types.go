package spreadsheet

const (
	defaultSheet = "Report"
	columnWidth  = 22
)

type service struct {
	sheet string
}

type SpreadsheetService interface {
	Write(path string, header []string, rows [][]any) error
	Read(path string) ([][]string, error)
}
