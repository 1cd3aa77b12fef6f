package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/crystalix007/intervals/interval"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

func (a *app) containsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contains INTERVAL VALUE",
		Short: "Report whether VALUE lies in INTERVAL",
		Args:  cobra.ExactArgs(2),
		RunE:  a.dispatch(runContains[int64], runContains[float64]),
	}
}

func runContains[T constraints.Ordered](a *app, cmd *cobra.Command, d domain[T], args []string) error {
	operands, err := d.intervals(args[:1])
	if err != nil {
		return err
	}

	value, err := d.scalar(args[1])
	if err != nil {
		return ierrors.Wrapf(err, "%s operand %q", d.name, args[1])
	}

	contains := operands[0].Contains(value)
	a.logger.Debug("contains", zap.Stringer("interval", operands[0]), zap.Any("value", value), zap.Bool("result", contains))

	return printLine(cmd, contains)
}

func (a *app) includesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "includes INTERVAL OTHER",
		Short: "Report whether INTERVAL is a superset of OTHER",
		Args:  cobra.ExactArgs(2),
		RunE:  a.dispatch(runIncludes[int64], runIncludes[float64]),
	}
}

func runIncludes[T constraints.Ordered](a *app, cmd *cobra.Command, d domain[T], args []string) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	includes := operands[0].Includes(operands[1])
	a.logger.Debug("includes", zap.Stringers("operands", operands), zap.Bool("result", includes))

	return printLine(cmd, includes)
}

func (a *app) overlapsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overlaps INTERVAL OTHER",
		Short: "Report whether the intervals share a value",
		Args:  cobra.ExactArgs(2),
		RunE:  a.dispatch(runOverlaps[int64], runOverlaps[float64]),
	}
}

func runOverlaps[T constraints.Ordered](a *app, cmd *cobra.Command, d domain[T], args []string) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	overlaps := operands[0].Overlaps(operands[1])
	a.logger.Debug("overlaps", zap.Stringers("operands", operands), zap.Bool("result", overlaps))

	return printLine(cmd, overlaps)
}

func (a *app) intersectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect INTERVAL OTHER",
		Short: "Print the intersection of two intervals",
		Args:  cobra.ExactArgs(2),
		RunE:  a.dispatch(runIntersect[int64], runIntersect[float64]),
	}
}

func runIntersect[T constraints.Ordered](a *app, cmd *cobra.Command, d domain[T], args []string) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	intersection, ok := operands[0].Intersection(operands[1])
	a.logger.Debug("intersect", zap.Stringers("operands", operands), zap.Bool("overlapping", ok))

	return printOptional(cmd, intersection, ok)
}

func (a *app) encloseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enclose INTERVAL...",
		Short: "Print the smallest interval containing all operands",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.dispatch(runEnclose[int64], runEnclose[float64]),
	}
}

func runEnclose[T constraints.Ordered](a *app, cmd *cobra.Command, d domain[T], args []string) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	enclosure := lo.Reduce(operands[1:], interval.Interval[T].Enclosure, operands[0])
	a.logger.Debug("enclose", zap.Stringers("operands", operands), zap.Stringer("result", enclosure))

	return printLine(cmd, enclosure)
}

func (a *app) gapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gap INTERVAL OTHER",
		Short: "Print the interval strictly between two disjoint intervals",
		Args:  cobra.ExactArgs(2),
		RunE:  a.dispatch(runGap[int64], runGap[float64]),
	}
}

func runGap[T constraints.Ordered](a *app, cmd *cobra.Command, d domain[T], args []string) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	gap, ok := operands[0].Gap(operands[1])
	a.logger.Debug("gap", zap.Stringers("operands", operands), zap.Bool("disjoint", ok))

	return printOptional(cmd, gap, ok)
}

func (a *app) unionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "union INTERVAL OTHER",
		Short: "Print the connected components of the union, one per line",
		Args:  cobra.ExactArgs(2),
		RunE:  a.dispatch(runUnion[int64], runUnion[float64]),
	}
}

func runUnion[T constraints.Ordered](a *app, cmd *cobra.Command, d domain[T], args []string) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	union := operands[0].Union(operands[1])
	a.logger.Debug("union",
		zap.Stringers("operands", operands),
		zap.Stringer("enclosure", union.Enclosure),
		zap.Bool("disjoint", union.Disjoint),
	)

	components := lo.Map(slices.Collect(union.All()), interval.Interval[T].String)

	return printLine(cmd, strings.Join(components, "\n"))
}

func (a *app) measureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "measure INTERVAL",
		Short: "Print the length of an interval",
		Args:  cobra.ExactArgs(1),
		RunE:  a.dispatch(runMeasure[int64], runMeasure[float64]),
	}
}

func runMeasure[T interval.Number](a *app, cmd *cobra.Command, d domain[T], args []string) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	measure := interval.Measure(operands[0])
	a.logger.Debug("measure", zap.Stringer("interval", operands[0]), zap.Any("result", measure))

	return printLine(cmd, measure)
}

func (a *app) dilateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dilate INTERVAL DELTA",
		Short: "Widen both sides of an interval by DELTA",
		Long:  "Widen both sides of an interval by DELTA. A negative DELTA shrinks the interval and fails once it would be empty.",
		Args:  cobra.ExactArgs(2),
		RunE:  a.dispatch(runDilate[int64], runDilate[float64]),
	}
}

func runDilate[T interval.Number](a *app, cmd *cobra.Command, d domain[T], args []string) error {
	operands, err := d.intervals(args[:1])
	if err != nil {
		return err
	}

	delta, err := d.scalar(args[1])
	if err != nil {
		return ierrors.Wrapf(err, "%s operand %q", d.name, args[1])
	}

	dilated, err := interval.Dilate(operands[0], delta)
	if err != nil {
		return err
	}

	a.logger.Debug("dilate", zap.Stringer("interval", operands[0]), zap.Any("delta", delta), zap.Stringer("result", dilated))

	return printLine(cmd, dilated)
}

func (a *app) hullCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hull VALUE...",
		Short: "Print the smallest closed interval containing all values",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.dispatch(runHull[int64], runHull[float64]),
	}
}

func runHull[T constraints.Ordered](a *app, cmd *cobra.Command, d domain[T], args []string) error {
	values, err := d.scalars(args)
	if err != nil {
		return err
	}

	hull, ok := interval.EnclosureOfItems(slices.Values(values))
	if !ok {
		return ierrors.Wrap(interval.ErrNotANumber, "hull")
	}

	a.logger.Debug("hull", zap.Int("values", len(values)), zap.Stringer("result", hull))

	return printLine(cmd, hull)
}

func (a *app) iterCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "iter INTERVAL",
		Short: "Print every integer in an interval, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: a.integersOnly(func(a *app, cmd *cobra.Command, d domain[int64], args []string) error {
			return runIter(a, cmd, d, args, limit)
		}),
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many values (0 for no limit)")

	return cmd
}

func runIter[T constraints.Integer](a *app, cmd *cobra.Command, d domain[T], args []string, limit int) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	count := 0
	for value := range interval.Values(operands[0]) {
		if limit > 0 && count == limit {
			a.logger.Debug("iteration limit reached", zap.Int("limit", limit))

			break
		}

		if err := printLine(cmd, value); err != nil {
			return err
		}

		count++
	}

	a.logger.Debug("iter", zap.Stringer("interval", operands[0]), zap.Int("values", count))

	return nil
}

func (a *app) centerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "center INTERVAL",
		Short: "Print the midpoint of an interval (float operands)",
		Args:  cobra.ExactArgs(1),
		RunE:  a.floatsOnly(runCenter[float64]),
	}
}

func runCenter[F constraints.Float](a *app, cmd *cobra.Command, d domain[F], args []string) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	center := interval.Center(operands[0])
	a.logger.Debug("center", zap.Stringer("interval", operands[0]), zap.Any("result", center))

	return printLine(cmd, center)
}

func (a *app) iouCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "iou INTERVAL OTHER",
		Short: "Print the intersection over union of two intervals (float operands)",
		Args:  cobra.ExactArgs(2),
		RunE:  a.floatsOnly(runIoU[float64]),
	}
}

func runIoU[F constraints.Float](a *app, cmd *cobra.Command, d domain[F], args []string) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	iou := interval.IoU(operands[0], operands[1])
	a.logger.Debug("iou", zap.Stringers("operands", operands), zap.Any("result", iou))

	return printLine(cmd, iou)
}

func (a *app) closureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "closure INTERVAL",
		Short: "Print the interval with both limits included (float operands)",
		Args:  cobra.ExactArgs(1),
		RunE:  a.floatsOnly(runClosure[float64]),
	}
}

func runClosure[F constraints.Float](a *app, cmd *cobra.Command, d domain[F], args []string) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	return printLine(cmd, interval.Closure(operands[0]))
}

func (a *app) interiorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interior INTERVAL",
		Short: "Print the interval with both limits excluded (float operands)",
		Args:  cobra.ExactArgs(1),
		RunE:  a.floatsOnly(runInterior[float64]),
	}
}

func runInterior[F constraints.Float](a *app, cmd *cobra.Command, d domain[F], args []string) error {
	operands, err := d.intervals(args)
	if err != nil {
		return err
	}

	interior, ok := interval.Interior(operands[0])
	a.logger.Debug("interior", zap.Stringer("interval", operands[0]), zap.Bool("non-empty", ok))

	return printOptional(cmd, interior, ok)
}
