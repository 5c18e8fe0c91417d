package taskfile

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/paratrooper/internal/core/task"
)

// region tracks which level-1 block the parser is inside.
type region int

const (
	regionNone region = iota
	regionDaily
	regionMain
	regionArchive
)

// Parse converts raw file text into a structured document. Parsing is
// total: malformed lines are logged at debug level and skipped, never
// fatal.
func Parse(text string) *task.Document {
	doc := task.NewDocument()

	var (
		reg        = regionNone
		daily      *task.DailyLog
		section    *task.Section
		subsection *task.Section
		bucket     *task.ArchiveBucket
	)

	for _, raw := range strings.Split(text, "\n") {
		kind, payload := classify(raw)

		switch kind {
		case lineBlank:
			continue

		case lineHeader1:
			daily, section, subsection, bucket = nil, nil, nil, nil
			switch payload {
			case "DAILY":
				reg = regionDaily
			case "MAIN":
				reg = regionMain
			case "ARCHIVE":
				reg = regionArchive
			default:
				reg = regionNone
				log.Debug().Str("header", payload).Msg("taskfile: unknown region header, skipping block")
			}

		case lineHeader2:
			switch reg {
			case regionDaily:
				date, err := task.ParseDate(payload)
				if err != nil {
					daily = nil
					log.Debug().Str("header", payload).Msg("taskfile: daily header is not a date, skipping")
					continue
				}
				daily = doc.EnsureDaily(date)
			case regionMain:
				section = doc.EnsureSection(payload)
				subsection = nil
			case regionArchive:
				bucket = doc.EnsureArchive(payload)
			}

		case lineHeader3:
			if reg == regionMain && section != nil {
				subsection = section.EnsureSub(payload)
			}

		case lineTask:
			t, ok := parseTaskLine(payload)
			if !ok {
				log.Debug().Str("line", payload).Msg("taskfile: malformed task line, skipping")
				continue
			}
			switch {
			case reg == regionDaily && daily != nil:
				stripLegacySource(t)
				daily.Tasks = append(daily.Tasks, t)
			case reg == regionMain && section != nil:
				if subsection != nil {
					t.Section, t.Subsection = section.Name, subsection.Name
					subsection.Add(t)
				} else {
					t.Section = section.Name
					section.Add(t)
				}
			case reg == regionArchive && bucket != nil:
				bucket.Tasks = append(bucket.Tasks, t)
			default:
				log.Debug().Str("line", payload).Msg("taskfile: task line outside any block, skipping")
			}

		case lineOther:
			log.Debug().Str("line", payload).Msg("taskfile: unrecognized line, skipping")
		}
	}

	return doc
}

// stripLegacySource handles the old daily-entry encoding that embedded
// the origin section as literal trailing text ("... from SECTION")
// instead of a metadata token.
func stripLegacySource(t *task.Task) {
	if t.SourceSection != "" {
		return
	}
	text, source, found := cutLast(t.Text, " from ")
	if !found || text == "" || !looksLikeSectionPath(source) {
		return
	}
	t.Text = text
	t.SourceSection = source
}

// looksLikeSectionPath guards the legacy strip against ordinary prose
// containing " from ": the old writer only ever appended uppercased
// section paths like "BILLS" or "WORK:errands".
func looksLikeSectionPath(s string) bool {
	top, _, _ := strings.Cut(s, ":")
	if top == "" {
		return false
	}
	for _, r := range top {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
