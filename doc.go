/*
Package workoutstore keeps every operation of a workout tracker answerable by
a single key lookup or a single contiguous scan over one partitioned
key-value table.

Two entity kinds share the table: workout types (the catalog of activities a
user tracks) and workout log entries (one per user, type and day). Kind and
identity are folded into composite sort keys so that related entries cluster
under a shared prefix:

	Type#<Name>              workout type entry
	Workout#<Type>#<Date>    workout log entry, primary ordering
	Workout#<Date>#<Type>    workout log entry, byDate index ordering

Dates use the fixed-width YYYY-MM-DD form, so lexicographic key order is
calendar order and a calendar interval is one BETWEEN scan.

Basic Usage:

	adapter := ddb.New(client, cfg)
	store, _ := workoutstore.New(adapter)

	wt, _ := entity.NewWorkoutType("user-1", "Swimming", "laps in the pool")
	_ = store.AddWorkoutType(ctx, wt)

	wl, _ := entity.NewWorkoutLog("user-1", "Swimming", date,
		map[string]string{"laps": "40"})
	_ = store.LogWorkout(ctx, wl)

	page, _ := store.ListWorkoutsByType(ctx, "user-1", "Swimming", "")

List operations return bounded pages with opaque continuation tokens; the
Stream variants walk the same sequences lazily over a channel. An empty
result is a successful result, never an error.

For more information, see the documentation at https://github.com/suparena/workoutstore
*/
package workoutstore
