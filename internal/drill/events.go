package drill

import "go.uber.org/zap"

// LogStarted records the start of a run.
func LogStarted(log *zap.Logger, d *Drill) {
	log.Info("drill started", zap.Int("total", d.Total()))
}

// LogOutcome records one Submit result. The raw answer is only logged at
// debug level.
func LogOutcome(log *zap.Logger, d *Drill, out Outcome) {
	ordinal := zap.Int("ordinal", out.Question.Ordinal)
	switch out.Kind {
	case OutcomeQuit:
		log.Info("drill quit", ordinal, zap.Int("correct", d.Correct()))
	case OutcomeSkipped:
		log.Info("question skipped", ordinal)
	default:
		log.Info("question graded",
			ordinal,
			zap.Bool("correct", out.Result.Correct),
			zap.Bool("has_and", out.Result.HasAnd),
			zap.Bool("has_or", out.Result.HasOr),
			zap.Int("missing", len(out.Result.Missing)),
		)
		log.Debug("answer", ordinal, zap.String("input", out.Input), zap.Strings("missing_tokens", out.Result.Missing))
	}
}

// LogFinished records the final score.
func LogFinished(log *zap.Logger, sum Summary) {
	log.Info("drill finished",
		zap.Int("correct", sum.Correct),
		zap.Int("total", sum.Total),
		zap.Float64("percentage", sum.Percentage),
		zap.Stringer("tier", sum.Tier),
	)
}

// LogInterrupted records a run that ended before the summary or quit.
func LogInterrupted(log *zap.Logger, d *Drill, err error) {
	log.Info("drill interrupted",
		zap.Stringer("phase", d.Phase()),
		zap.Int("correct", d.Correct()),
		zap.Error(err),
	)
}
