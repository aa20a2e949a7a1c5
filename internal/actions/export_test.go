package actions

// DeleteBranches exposes the batch deletion loop so a failing deleter can be injected
var DeleteBranches = deleteBranches
