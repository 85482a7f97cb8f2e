// Package domain contains the core entities of the application: users and
// their roles, financial transactions, cost records with their approval
// workflow, and offered customer services. Entities validate themselves;
// persistence and transport concerns live elsewhere.
package domain
