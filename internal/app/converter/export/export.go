package export

import (
	"fmt"

	"github.com/tealeg/xlsx"

	"audio-transcriber/internal/app/model"
)

// ToExcel writes one row per job of a finished batch: identity, source path,
// status, transcription and error message, in result order.
func ToExcel(jobs model.JobSet, result *model.BatchResult, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "Identity"
	headerRow.AddCell().Value = "Source Path"
	headerRow.AddCell().Value = "Status"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Error Message"

	sources := make(map[string]string, len(jobs))
	for _, j := range jobs {
		sources[j.Identity] = j.SourcePath
	}

	for _, o := range result.Outcomes() {
		row := sheet.AddRow()
		row.AddCell().Value = o.Identity()
		row.AddCell().Value = sources[o.Identity()]
		if o.IsSuccess() {
			row.AddCell().Value = "success"
			row.AddCell().Value = o.Text()
			row.AddCell().Value = ""
		} else {
			row.AddCell().Value = "failure"
			row.AddCell().Value = ""
			row.AddCell().Value = o.Cause().Error()
		}
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save %s: %w", outputFilePath, err)
	}
	return nil
}
