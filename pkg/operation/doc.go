/*
Package operation stamps headers onto documents.

	+-------------+     +-------------+     +-------------+
	|    scan     | --> |   header    | --> |  document   |
	| (metadata)  |     | (resolve)   |     | (insert)    |
	+-------------+     +------+------+     +-------------+
	                           |
	                    +------+------+
	                    |  identity   |
	                    +-------------+

🎯 Purpose:
- Reads the declaration names at the top of a document
- Looks up the author and resolves the template
- Inserts the header and saves the document

🔄 Flow:
1. Runner expands arguments into files (include/exclude globs)
2. Each file is opened and locked
3. Operator.Apply scans, resolves, inserts and saves
4. Results are reported through pkg/log

⚡ Files are handled one after another. Cancelling the context stops the run
before the next file.

🔍 Example:

	op, err := operation.New(operation.Options{Config: cfg})
	runner := operation.NewRunner(op, logger)
	err = runner.Run(ctx, files)
*/
package operation
