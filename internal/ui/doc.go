// Package ui contains the Bubble Tea program that lists chat conversations and
// hosts the rename dialog. The Model type focuses on message orchestration,
// while dedicated helpers own navigation, input, rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update gives the rename dialog (internal/ui/dialog) first claim on each
//     message. Key presses only reach it while it is on screen; its own
//     results, focus requests, and spinner ticks reach it at any time so a
//     late reply can be recognised as stale and dropped.
//   - Everything else is routed through a typed handler registry so each
//     tea.Msg is handled by a focused function (for example, navigation for
//     key presses or backend updates).
//
// State ownership:
//   - List state lives in internal/ui/state.Level, which tracks rows,
//     filtering, selection, and viewport calculations.
//   - Conversation records are held by internal/state and kept in sync by the
//     dispatcher so actions always see the latest snapshot.
//   - Actions run through the internal/ui/command bus. The rename action
//     resolves the selected conversation and answers with a RenamePrompt,
//     which opens the dialog.
//
// Backend interactions:
//   - A backend.Watcher polls the chat backend; Update waits for its events
//     and hands them to applyBackendEvent, which refreshes the store and the
//     rows on screen.
//   - The dialog calls the backend directly through chat.Renamer. A
//     successful rename updates the store and asks the watcher to refresh.
//   - With a rename id configured the dialog opens once the first snapshot
//     arrives and the program exits when it closes.
package ui
