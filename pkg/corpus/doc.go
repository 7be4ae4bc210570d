/*
Package corpus loads previously collected utterances from a SQL database
(SQLite in practice) into a Markov brain. It only ever reads the database:
each row of the configured query is split on whitespace and remembered as an
independent sequence, so every row may end an utterance.
*/
package corpus
