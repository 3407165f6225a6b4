// Package review implements the review session workflow: preparing the
// review branch (Controller), recording approvals (Approver) and reporting
// what is left to review (Reporter).
//
// All three operate on an explicit session.Session and talk to git only
// through git.Git. None of them print anything; they return values that the
// command layer renders.
package review
