package core

// DerivedRecord pairs a ledger record with its computed cost ratios.
type DerivedRecord struct {
	TournamentRecord
	TotalCost    Money
	CostPerPoint Money // 0 when RankingPoints == 0
	CostPerWin   Money // 0 when MatchWins == 0
}

// Average is an aggregate ratio with an explicit validity sentinel.
// Valid is false when the denominator over the whole snapshot is zero;
// renderers show a placeholder instead of a number.
type Average struct {
	Amount Money
	Valid  bool
}

// Aggregates holds the cumulative stats over a whole snapshot.
type Aggregates struct {
	TotalCost       Money
	RankingPoints   int
	MatchWins       int
	AvgCostPerPoint Average
	AvgCostPerWin   Average
}

// DerivedView is the full output of Derive: one DerivedRecord per ledger
// record, in insertion order, plus the snapshot-wide aggregates.
type DerivedView struct {
	Records []DerivedRecord
	Totals  Aggregates
}

// Derive recomputes the derived view from scratch for a ledger snapshot.
// It is pure: no caching, no incremental state, same input same output.
// A zero denominator yields 0 per record and an invalid Average overall,
// never an error.
func Derive(snapshot []TournamentRecord) DerivedView {
	view := DerivedView{Records: make([]DerivedRecord, 0, len(snapshot))}
	for _, r := range snapshot {
		d := DerivedRecord{TournamentRecord: r, TotalCost: TotalCost(r)}
		if r.RankingPoints > 0 {
			d.CostPerPoint = d.TotalCost.DivideBy(r.RankingPoints)
		}
		if r.MatchWins > 0 {
			d.CostPerWin = d.TotalCost.DivideBy(r.MatchWins)
		}
		view.Records = append(view.Records, d)

		view.Totals.TotalCost = view.Totals.TotalCost.Add(d.TotalCost)
		view.Totals.RankingPoints += r.RankingPoints
		view.Totals.MatchWins += r.MatchWins
	}
	if view.Totals.RankingPoints > 0 {
		view.Totals.AvgCostPerPoint = Average{
			Amount: view.Totals.TotalCost.DivideBy(view.Totals.RankingPoints),
			Valid:  true,
		}
	}
	if view.Totals.MatchWins > 0 {
		view.Totals.AvgCostPerWin = Average{
			Amount: view.Totals.TotalCost.DivideBy(view.Totals.MatchWins),
			Valid:  true,
		}
	}
	return view
}

// TotalCost sums the six cost fields of a record.
func TotalCost(r TournamentRecord) Money {
	var total Money
	for _, m := range r.Costs() {
		total = total.Add(m)
	}
	return total
}
