package graph

// graph has no observable error mode: Obtain never fails. Programmer
// misuse — e.g. passing a nil Op — panics immediately rather than
// returning an error, since there is no recoverable caller action.
