// Package planner handles the planning phase of project generation.
//
// The planner turns a classified chip, the validated options and the composed
// manifest into a deterministic, ordered list of operations. Each operation is
// tagged with the pipeline stage it completes, so the executor can report how
// far a failed run got and a dry run can print the plan without touching disk.
//
// Key responsibilities:
//   - Select and render every generated file for the chip family
//   - Order operations by stage: Created, Configured, ManifestWritten,
//     SourceWritten, MemoryLayoutWritten
//   - Detect conflicts with existing paths before execution
package planner
