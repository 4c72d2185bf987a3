package games

// Cooperative riddle hunt for up to four players sharing one space.
// Players wander between doors; some doors hide riddles, others are decoys.
// Solving a riddle yields a clue, and the collected clues point at a final
// riddle that ends the round for everyone the moment one player answers it.

// How to play
// - Each player joins with a name and is assigned one of four colors
// - Movement is relayed live to the other players
// - Clues are pooled for the whole group (or kept per player, configurable)
// - Any player may submit the final answer once their doors are done;
//   first correct answer wins the round for the group
// - A restart throws everyone back to the lobby and reshuffles the doors

// Implementation details:
// - One websocket per player into a single hub goroutine; no locks
// - Colors are a 4-slot free list, so capacity equals the palette
// - Door answers never leave the server; door checking is client-side,
//   matching the original client, and solved levels are client-reported
// - Two separate completion signals exist: "all_ready" (everyone reached
//   the ready level) and "game_complete" (final riddle answered). Whether
//   both are needed is a product question; they are deliberately not merged
