// Package store owns the task list and its on-disk copy.
//
// A Store is the only component that reads or writes the data file. It keeps
// the canonical ordered task list in memory and writes the whole list back to
// disk after every mutation. The data file is a single JSON object whose
// "tasks" key holds the list:
//
//	{
//	  "schema_version": 1,
//	  "tasks": [
//	    {
//	      "title": "Essay",
//	      "description": "",
//	      "category": "School",
//	      "due_date": "2025-03-10",
//	      "priority": "High",
//	      "completion_status": "Not Started"
//	    }
//	  ]
//	}
//
// # Failure Model
//
// Persistence never fails loudly:
//   - Load: a missing, unreadable, malformed or schema-violating file is logged
//     and the store starts empty.
//   - Save: a write failure is logged, kept in LastSaveError and passed to the
//     save-error handler; the mutation that triggered it still succeeds in
//     memory.
//
// # Capacity
//
// The list holds at most MaxTasks entries. Adding a task to a full list
// clears the whole list first, so the new task becomes the only entry.
//
// # Concurrency
//
// A Store is not safe for concurrent use and takes no file locks. Two stores
// (or two processes) pointed at the same file overwrite each other; the last
// writer wins. Create one Store per process and share it.
package store
