package classify

import (
	"fmt"

	"github.com/joseph-ayodele/file-agent/constants"
)

// DefaultForType is the deterministic, network-free fallback used when the
// remote capability is unavailable or no content was extracted. It is a pure
// function of (fileName, fileType, reason); reason is recorded in Note.
func DefaultForType(fileName, fileType, reason string) Classification {
	ext := constants.NormalizeExt(fileType)

	c := Classification{
		Priority: constants.PriorityMedium,
		Note:     reason,
	}

	switch {
	case constants.IsImageExt(fileType):
		c.Category = constants.Images
		c.Summary = fmt.Sprintf("Image file %s stored for review", fileName)
		c.Tags = []string{"image", "media", ext}
		c.ActionNeeded = "Review and organize with other photos"
	case ext == "pdf":
		c.Category = constants.Document
		c.Summary = fmt.Sprintf("PDF document %s awaiting review", fileName)
		c.Tags = []string{"pdf", "document"}
		c.ActionNeeded = "File with other documents"
	case ext == "csv" || ext == "xlsx":
		c.Category = constants.Data
		c.Summary = fmt.Sprintf("Tabular data file %s", fileName)
		c.Tags = []string{"data", "tabular", ext}
		c.ActionNeeded = "Inspect the data contents"
	default:
		c.Category = constants.Other
		c.Summary = fmt.Sprintf("File processing completed for %s", fileName)
		c.Tags = []string{ext, "unanalyzed"}
		c.ActionNeeded = "Manual review recommended"
	}

	return c
}
