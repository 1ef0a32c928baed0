// This file documents the API naming conventions used in the rope package.
// It serves as a reference for understanding the patterns and consistency
// across the API surface.

/*
API NAMING CONVENTIONS
======================

1. GRAPHEME-INDEXED OPERATIONS
   Pattern: *AtGraphemeIndex / *BetweenGraphemeIndices
   - InsertAtGraphemeIndex(text, pos) - splice text in at a grapheme index
   - RemoveBetweenGraphemeIndices(a, b) - delete a grapheme range
   - SplitAtGraphemeIndex(pos) - split into (this, new right)
   - GraphemeAt(i) - the grapheme cluster at index i
   - GraphemeCount() - total grapheme clusters

2. CHAR-INDEXED OPERATIONS (secondary address space)
   Pattern: Char*
   - CharCount() - total Unicode scalar values
   - CharAt(i) - the grapheme a char index falls in (rounds to its start)
   - CharIndexToGraphemeIndex / GraphemeIndexToCharIndex - space conversion
   - CharIterator() / CharIteratorAt(i) - one rune at a time

3. LINE/COLUMN OPERATIONS
   Pattern: *LineIndex*, *LineCol*
   - LineCount() - line_ending_count + 1
   - GraphemeIndexToLineIndex / LineIndexToGraphemeIndex
   - GraphemeIndexToLineCol / LineColToGraphemeIndex

4. ITERATOR OPERATIONS
   Pattern: *Iter() / *IterAt(i) / *IterBetween(a, b)
   - ChunkIter() - leaf-by-leaf, unpositioned
   - GraphemeIter() / GraphemeIterAt(i) / GraphemeIterBetween(a, b)
   - LineIter() / LineIterAt(li)
   - CharIterator() / CharIteratorAt(i) - named Iterator rather than Iter
     to distinguish the char address space from the grapheme one
   All iterators follow Next() (T, bool) rather than a separate HasNext.
   ChunkIter is the one exception: Next() advances, and the separate
   Chunk() accessor returns (string, error), failing with
   ErrIteratorState when called before the first Next() or after
   exhaustion, since a leaf's text isn't naturally a zero value the way
   an empty string would be mistaken for "no more chunks."

5. QUERY OPERATIONS (no mutation)
   Pattern: Is*()
   - IsBalanced() - verifies the AVL invariant recursively

6. DEBUG / DIAGNOSTIC OPERATIONS
   - Stats() - node/leaf counts, height, average leaf size
   - ToGraphviz() - DOT description of the tree

7. CONSTRUCTION
   - New() / NewWithLimits(limits) - empty rope
   - FromString(s) / FromStringWithLimits(s, limits) - bulk build

ERROR HANDLING CONVENTIONS
--------------------------
- Every fallible exported method returns (result, error) or error alone:
  out-of-bounds indices and inverted ranges are reported this way, never
  by panic.
- A failing call leaves the rope in its pre-call state.
- Internal invariant violations (a nil node where one is guaranteed to
  exist) panic: those are bugs in this package, not caller mistakes.

CONSISTENCY RULES
-----------------
1. Ranges are always "a, b" with b exclusive.
2. All indices (grapheme, char, line, column) are 0-indexed.
3. Mutating operations (Insert, Remove, Split, Append) mutate the
   receiver in place; Append consumes its other-rope argument, and
   SplitAtGraphemeIndex returns the right half as a new rope.
4. Iterator methods follow: Next() (T, bool).
*/
package rope
