package taskfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/paratrooper/internal/core/task"
)

const sampleFile = `# DAILY

## 15-06-2025

- [ ] water plants | @15-06-2025 (daily) from:HOME #001
- [x] call dentist | @15-06-2025 #004

# MAIN

## HOME

- [ ] water plants | @14-06-2025 (daily) #001

### garage

- [ ] fix the door | @01-06-2025 #002

## WORK

- [~] quarterly report | @10-06-2025 #003

# ARCHIVE

## 14-06-2025

- [x] old thing | @14-06-2025 #005
`

func TestParse(t *testing.T) {
	doc := Parse(sampleFile)

	require.Len(t, doc.Daily, 1)
	log := doc.Daily[0]
	assert.Equal(t, "15-06-2025", log.Date.String())
	require.Len(t, log.Tasks, 2)
	assert.Equal(t, "water plants", log.Tasks[0].Text)
	assert.Equal(t, "HOME", log.Tasks[0].SourceSection)

	require.Len(t, doc.Main, 2)
	home := doc.Main[0]
	assert.Equal(t, "HOME", home.Name)
	require.Len(t, home.Tasks, 1)
	assert.Equal(t, "HOME", home.Tasks[0].Section)

	require.Len(t, home.Subsections, 1)
	garage := home.Subsections[0]
	assert.Equal(t, "garage", garage.Name)
	require.Len(t, garage.Tasks, 1)
	assert.Equal(t, "HOME", garage.Tasks[0].Section)
	assert.Equal(t, "garage", garage.Tasks[0].Subsection)

	work := doc.Main[1]
	require.Len(t, work.Tasks, 1)
	assert.Equal(t, task.StatusInProgress, work.Tasks[0].Status)

	require.Len(t, doc.Archive, 1)
	assert.Equal(t, "14-06-2025", doc.Archive[0].Name)
	require.Len(t, doc.Archive[0].Tasks, 1)
}

func TestParse_Empty(t *testing.T) {
	doc := Parse("")
	assert.Empty(t, doc.Daily)
	assert.Empty(t, doc.Main)
	assert.Empty(t, doc.Archive)
}

func TestParse_LegacySourceSuffix(t *testing.T) {
	doc := Parse(`# DAILY

## 15-06-2025

- [ ] pay electric bill from BILLS | @15-06-2025 #001
- [ ] pick up package from the post office | #002
`)

	require.Len(t, doc.Daily, 1)
	require.Len(t, doc.Daily[0].Tasks, 2)

	legacy := doc.Daily[0].Tasks[0]
	assert.Equal(t, "pay electric bill", legacy.Text)
	assert.Equal(t, "BILLS", legacy.SourceSection)

	// Lowercase prose after " from " is not a section path.
	prose := doc.Daily[0].Tasks[1]
	assert.Equal(t, "pick up package from the post office", prose.Text)
	assert.Empty(t, prose.SourceSection)
}

func TestParse_SkipsMalformedLines(t *testing.T) {
	doc := Parse(`# DAILY

## not-a-date

- [ ] orphaned by a bad header | #001

## 15-06-2025

- [z] bad status marker
- [ ] kept | #002
stray prose line

# UNKNOWN

- [ ] inside an unknown region | #003

# MAIN

## HOME

- [ ] safe | #004
`)

	require.Len(t, doc.Daily, 1)
	require.Len(t, doc.Daily[0].Tasks, 1)
	assert.Equal(t, "kept", doc.Daily[0].Tasks[0].Text)

	require.Len(t, doc.Main, 1)
	require.Len(t, doc.Main[0].Tasks, 1)
	assert.Equal(t, "safe", doc.Main[0].Tasks[0].Text)
}

func TestParse_TaskBeforeAnyHeaderIsDropped(t *testing.T) {
	doc := Parse("- [ ] floating task | #001\n")
	assert.Empty(t, doc.Daily)
	assert.Empty(t, doc.Main)
}

func TestParse_SubsectionOutsideMainIgnored(t *testing.T) {
	doc := Parse(`# ARCHIVE

## 14-06-2025

### nested

- [x] archived | #001
`)

	// The level-3 header is ignored; the task lands in the bucket.
	require.Len(t, doc.Archive, 1)
	assert.Len(t, doc.Archive[0].Tasks, 1)
}
