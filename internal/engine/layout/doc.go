// Package layout implements the Layout Contract (LC): the Shaper capability
// a host plugs in to measure how buffer columns map onto a visual grid, plus
// the hit-testing and tab-stop arithmetic built on top of that contract.
// THE CORE never renders a cell itself; it only needs enough geometry to
// answer "where is the caret" and "which buffer column did the host click".
package layout
