package gen

import (
	"github.com/vvka-141/perinat/pkg/perinat"
)

// InjectDefects degrades the dataset in place so downstream quality checks
// have something to find: null education levels, null systolic readings,
// exact-duplicate visit rows and visit dates shifted past delivery.
//
// Duplicates are appended before the date shift, so a shifted row can be
// either an original or a duplicate.
func InjectDefects(s *Sampler, ds *perinat.Dataset, d perinat.DefectConfig) {
	for _, idx := range s.SampleIndices(len(ds.Patients), d.NullEducation) {
		ds.Patients[idx].EducationLevel = nil
	}

	for _, idx := range s.SampleIndices(len(ds.PrenatalVisits), d.NullBPSystolic) {
		ds.PrenatalVisits[idx].BPSystolic = nil
	}

	// Copied rows keep their visit IDs, so the duplicates are true
	// duplicates rather than near-matches.
	for _, idx := range s.SampleIndices(len(ds.PrenatalVisits), d.DuplicateVisits) {
		ds.PrenatalVisits = append(ds.PrenatalVisits, ds.PrenatalVisits[idx])
	}

	for _, idx := range s.SampleIndices(len(ds.PrenatalVisits), d.ShiftedVisits) {
		v := &ds.PrenatalVisits[idx]
		v.VisitDate = v.VisitDate.AddDate(0, 0, d.DateShiftDays)
	}
}
